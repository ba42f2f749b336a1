package services

import "time"

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"

	defaultPageSize = 1000
)

// TimeWindow carries the loosely typed date and time-of-day filter bounds
// shared by the order queries. The strings arrive straight from the query
// string and are defaulted by the sanitizer before they reach the store.
type TimeWindow struct {
	StartDate string `form:"StartDate"`
	EndDate   string `form:"EndDate"`
	StartTime string `form:"StartTime"`
	EndTime   string `form:"EndTime"`
}

// dateBounds parses the sanitized date strings into calendar-day bounds.
func (w TimeWindow) dateBounds() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, w.StartDate)
	end, _ := time.Parse(dateLayout, w.EndDate)
	return start, end
}

// GetOrdersQuery filters the order listing. OrderID, when present, is a
// shortcut to a single-record lookup that bypasses every other filter.
type GetOrdersQuery struct {
	OrderID *int64 `form:"OrderId"`
	TimeWindow
	PS int `form:"PS"`
	PN int `form:"PN"`
}

// GetOrderAmountQuery filters the order count.
type GetOrderAmountQuery struct {
	TimeWindow
}

// GetProfitQuery filters the profit aggregate. PizzaIDs optionally restricts
// the sum to specific sized items, matched case-insensitively.
type GetProfitQuery struct {
	TimeWindow
	PizzaIDs []string `form:"PizzaIds"`
}
