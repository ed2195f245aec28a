package utils

import (
	"strings"
	"time"
)

// DateLayout - формат дат в API (scheduled_date, purchase_date).
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate понимает дату без времени (полночь UTC) и варианты с временем.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameDay сравнивает календарную дату строки с day.
func SameDay(raw string, day time.Time) bool {
	t, ok := ParseDate(raw)
	if !ok {
		return false
	}
	return t.Format(DateLayout) == day.Format(DateLayout)
}
