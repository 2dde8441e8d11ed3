package menu

// Item is a menu row decorated for the ordering frontend.
// JSON keys match the existing frontend contract.
type Item struct {
	ID          string  `json:"Item_ID"`
	Name        string  `json:"Item_Name"`
	Description string  `json:"Item_Description,omitempty"`
	Price       float64 `json:"Current_Price"`
	ImageURL    string  `json:"Image_URL,omitempty"`
	IsVeg       bool    `json:"Is_Veg"`
	Category    string  `json:"Item_Category"`
	DietaryType string  `json:"Dietary_Type,omitempty"`

	Active bool `json:"-"`
}

// Section keeps menu groups ordered; the frontend renders them
// top to bottom exactly as sent.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type SmartMenu struct {
	Status     string    `json:"status"`
	Sections   []Section `json:"menu_sections"`
	TotalItems int       `json:"total_items"`
	Categories []string  `json:"categories"`
}
