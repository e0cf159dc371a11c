package utils

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts the wire date format (YYYY-MM-DD) with an RFC3339 fallback.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// DaysBetween counts the days in [start, end), rounding partial days up.
func DaysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// ProrateMonthly converts a monthly rate into a charge for the given day count.
func ProrateMonthly(monthlyRate float64, days int) float64 {
	return RoundCents(monthlyRate * float64(days) / 30)
}

func RoundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
