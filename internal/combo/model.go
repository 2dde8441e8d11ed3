package combo

// Deal is a generated combo offer, shaped like a menu item so the
// frontend can render it inside the Combos section.
type Deal struct {
	ID          string   `json:"Item_ID"`
	Name        string   `json:"Item_Name"`
	Description string   `json:"Item_Description"`
	Price       float64  `json:"Current_Price"`
	Original    float64  `json:"Original_Price"`
	Savings     float64  `json:"Savings"`
	Discount    float64  `json:"Discount_Percent"`
	ImageURL    string   `json:"Image_URL"`
	IsVeg       bool     `json:"Is_Veg"`
	Category    string   `json:"Item_Category"`
	Items       []string `json:"Combo_Items"`
	ItemCount   int      `json:"Item_Count"`

	Rating       float64 `json:"Rating"`
	OrderCount   int     `json:"Order_Count"`
	Personalized bool    `json:"Is_Personalized"`
	Insight      string  `json:"Insight"`
}

// strategy pairs a main keyword with a side keyword; keywords match
// either the category or the item name.
type strategy struct {
	Topic   string
	MainKey string
	SideKey string
	Suffix  string
}

var strategies = []strategy{
	{"North Indian Meal", "Gravy", "Bread", "Delight"},
	{"Rice Combo", "Rice", "Gravy", "Feast"},
	{"Chinese Combo", "Noodles", "Starter", "Treat"},
	{"Biryani Special", "Biryani", "Beverage", "Combo"},
	{"Snack Pack", "Starter", "Beverage", "Munchies"},
}
