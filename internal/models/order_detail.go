package models

// OrderDetail is a single pizza-quantity line item within an order.
type OrderDetail struct {
	OrderDetailsID int64  `gorm:"primaryKey;column:order_details_id" json:"order_details_id"`
	OrderID        int64  `gorm:"column:order_id" json:"order_id"`
	PizzaID        string `gorm:"column:pizza_id" json:"pizza_id"`
	Quantity       int    `json:"quantity"`
}
