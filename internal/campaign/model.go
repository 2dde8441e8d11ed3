package campaign

type Campaign struct {
	Name     string  `json:"name"`
	Discount float64 `json:"discount_percent"`
	Window   string  `json:"window"`
	Active   bool    `json:"active"`
}

type Offer struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
