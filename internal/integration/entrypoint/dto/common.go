// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// roundTo rounds v half away from zero. Non-finite values render as 0.
func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// money rounds a currency amount to cents.
func money(v float64) float64 { return roundTo(v, 2) }

// whole rounds a currency amount to whole units.
func whole(v float64) float64 { return roundTo(v, 0) }

// ratio rounds a fraction or percentage for display.
func ratio(v float64) float64 { return roundTo(v, 4) }

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func roundPtr(v *float64, places int32) *float64 {
	if v == nil {
		return nil
	}
	r := roundTo(*v, places)
	return &r
}
