package models

// PizzaType is a named recipe/category ("margherita") independent of size.
type PizzaType struct {
	PizzaTypeID string `gorm:"primaryKey;column:pizza_type_id" json:"pizza_type_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Ingredients string `json:"ingredients"`
}
