package models

import "strings"

// PizzaSizes is the fixed enumeration of accepted pizza sizes.
var PizzaSizes = []string{"S", "M", "L", "XL", "XXL"}

// IsValidPizzaSize reports whether size is one of the accepted sizes.
// The comparison is case-insensitive.
func IsValidPizzaSize(size string) bool {
	for _, s := range PizzaSizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// Pizza is a priced, sized instance of a pizza type. Its id is derived from
// the type id and size ("margherita_m") and never chosen independently.
type Pizza struct {
	PizzaID     string     `gorm:"primaryKey;column:pizza_id" json:"pizza_id"`
	PizzaTypeID string     `gorm:"column:pizza_type_id" json:"pizza_type_id"`
	Size        string     `json:"size"`
	Price       float64    `json:"price"`
	PizzaType   *PizzaType `gorm:"foreignKey:PizzaTypeID;references:PizzaTypeID" json:"pizza_type,omitempty"`
}

// PizzaItemID derives the identifier of a sized pizza item from its type and
// size. Both parts are lowercased so lookups are case-insensitive by
// convention.
func PizzaItemID(pizzaTypeID, size string) string {
	return strings.ToLower(pizzaTypeID) + "_" + strings.ToLower(size)
}
