package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/gin-gonic/gin"
)

// dateTimeLayouts are the timestamp formats accepted for order date/time
// parameters.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDateTime parses an order timestamp from the query string.
func parseDateTime(value string) (time.Time, error) {
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// respondOutcome writes a mutation outcome, mapping its status to an HTTP
// code. successStatus is used when the operation succeeded (200 for updates
// and deletes, 201 for creates).
func respondOutcome(ctx *gin.Context, outcome models.Outcome, successStatus int) {
	if outcome.Success() {
		body := gin.H{"success": true}
		if outcome.Message != "" {
			body["message"] = outcome.Message
		}
		ctx.JSON(successStatus, body)
		return
	}

	status := http.StatusInternalServerError
	switch outcome.Status {
	case models.StatusValidationError:
		status = http.StatusBadRequest
	case models.StatusNotFound:
		status = http.StatusNotFound
	}
	ctx.JSON(status, gin.H{"success": false, "error": outcome.Message})
}
