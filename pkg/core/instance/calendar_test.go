package instance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayDates_OnePerDayFromStart(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	dates, err := DayDates(start, 4)
	require.NoError(t, err)
	require.Len(t, dates, 4)

	for i, d := range dates {
		assert.Equal(t, start.AddDate(0, 0, i), d, "day %d", i)
	}
}

func TestDayDates_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)

	dates, err := DayDates(start, 3)
	require.NoError(t, err)

	assert.Equal(t, time.February, dates[2].Month())
	assert.Equal(t, 1, dates[2].Day())
}

func TestDayDates_RejectsNonPositiveCount(t *testing.T) {
	_, err := DayDates(time.Now(), 0)
	assert.ErrorIs(t, err, ErrDegenerateHorizon)
}
