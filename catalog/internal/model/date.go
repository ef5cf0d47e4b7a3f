package model

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidDate = errors.New("Enter a valid date.")

var dateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"01/02/06",
}

// ParseDate accepts the input formats offered by the HTML forms.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Today truncates now to a UTC calendar date.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
