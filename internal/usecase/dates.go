package usecase

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts ISO-8601 calendar dates and timestamps. Values without a
// zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
