package appointment

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidStartTime = errors.New("date must be YYYY-MM-DD and time must be HH:MM")

const localStartLayout = "2006-01-02 15:04"

// ParseLocalStart reads a wall-clock date and time in the business time zone
// and returns the absolute instant.
func ParseLocalStart(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(localStartLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
	if err != nil {
		return time.Time{}, ErrInvalidStartTime
	}
	return t, nil
}
