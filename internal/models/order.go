package models

import "time"

// Order represents a customer purchase event keyed by date and time of day.
// Date holds only the calendar day; Time is the time of day as "HH:MM:SS".
// Both are nullable because historical imports may lack them.
type Order struct {
	OrderID      int64         `gorm:"primaryKey;column:order_id" json:"order_id"`
	Date         *time.Time    `gorm:"type:date" json:"date,omitempty"`
	Time         *string       `gorm:"type:time" json:"time,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID" json:"order_details,omitempty"`
}
