package services

import (
	"strings"
	"time"
)

// clockLayouts are the time-of-day formats accepted from the query string.
var clockLayouts = []string{clockLayout, "15:04"}

// normalizeClock parses a time-of-day string and reformats it as "HH:MM:SS".
func normalizeClock(value string) (string, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(clockLayout), true
		}
	}
	return "", false
}

// sanitizeTimeWindow fills in defaults for missing or malformed bounds:
// start of time through today for dates, midnight through 23:59:59 for the
// time of day. It never fails; the result is always usable in a query.
func sanitizeTimeWindow(w TimeWindow) TimeWindow {
	if normalized, ok := normalizeClock(w.EndTime); ok {
		w.EndTime = normalized
	} else {
		w.EndTime = "23:59:59"
	}
	if normalized, ok := normalizeClock(w.StartTime); ok {
		w.StartTime = normalized
	} else {
		w.StartTime = "00:00:00"
	}
	if _, err := time.Parse(dateLayout, w.StartDate); err != nil {
		w.StartDate = "0001-01-01"
	}
	if _, err := time.Parse(dateLayout, w.EndDate); err != nil {
		w.EndDate = time.Now().Format(dateLayout)
	}
	return w
}

// sanitizeOrdersQuery defaults pagination (page size 1000, page 1) on top of
// the shared window defaults.
func sanitizeOrdersQuery(query GetOrdersQuery) GetOrdersQuery {
	if query.PS <= 0 {
		query.PS = defaultPageSize
	}
	if query.PN <= 0 {
		query.PN = 1
	}
	query.TimeWindow = sanitizeTimeWindow(query.TimeWindow)
	return query
}

// sanitizeProfitQuery lowercases the pizza-id filter for case-insensitive
// matching on top of the shared window defaults.
func sanitizeProfitQuery(query GetProfitQuery) GetProfitQuery {
	query.TimeWindow = sanitizeTimeWindow(query.TimeWindow)
	ids := make([]string, len(query.PizzaIDs))
	for i, id := range query.PizzaIDs {
		ids[i] = strings.ToLower(id)
	}
	query.PizzaIDs = ids
	return query
}
