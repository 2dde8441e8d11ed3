package order

import "time"

const StatusCompleted = "COMPLETED"

type Order struct {
	ID           string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Price        float64   `json:"order_price"`
	Status       string    `json:"order_status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Item struct {
	ID       string  `json:"order_item_id"`
	OrderID  string  `json:"order_id"`
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"item_price"`
}

// CartItem is a line as the frontend sends it. Older screens send
// the price under Current_Price, newer ones under price; accept both.
type CartItem struct {
	ItemID   string  `json:"Item_ID"`
	ItemName string  `json:"Item_Name"`
	Category string  `json:"category"`
	Price    float64 `json:"Current_Price"`
	AltPrice float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (c CartItem) UnitPrice() float64 {
	if c.Price > 0 {
		return c.Price
	}
	return c.AltPrice
}

func (c CartItem) Qty() int {
	if c.Quantity > 0 {
		return c.Quantity
	}
	return 1
}
