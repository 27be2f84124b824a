package instance

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DayDates expands the horizon's day indices into calendar dates, one per
// day starting at start. Day 0 maps to start itself.
func DayDates(start time.Time, days int) ([]time.Time, error) {
	if days <= 0 {
		return nil, ErrDegenerateHorizon
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   days,
		Dtstart: start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build day recurrence: %w", err)
	}

	return r.All(), nil
}
