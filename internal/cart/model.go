package cart

// Line is one saved cart entry. The frontend keys item IDs as
// dish_id on the cart screens.
type Line struct {
	ItemID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

type Cart struct {
	CustomerID string `json:"customer_id"`
	Lines      []Line `json:"items"`
}
