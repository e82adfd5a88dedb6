package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

// ParseDate accepts "2006-01-02", "02/01/06", "today" and "yesterday".
// Relative names resolve against now in loc. The result is a UTC midnight.
func ParseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	switch strings.ToLower(s) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	for _, layout := range []string{models.DateLayout, "02/01/06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or DD/MM/YY)", s)
}

func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// FormatLocal returns the provided time formatted in the display timezone.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC1123)
}

// FormatMinutes renders a duration in minutes as "1h05m" or "42m".
func FormatMinutes(minutes float64) string {
	d := time.Duration(minutes * float64(time.Minute)).Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
