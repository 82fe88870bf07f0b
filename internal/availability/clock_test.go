package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in        string
		expected  int
		expectErr bool
	}{
		{in: "00:00", expected: 0},
		{in: "09:00", expected: 540},
		{in: "17:30", expected: 1050},
		{in: "23:59", expected: 1439},
		{in: "24:00", expectErr: true},
		{in: "9:00:00", expectErr: true},
		{in: "morning", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "17:30", FormatClock(1050))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestClockRoundTrip(t *testing.T) {
	for minute := 0; minute < MinutesPerDay; minute += 15 {
		got, err := ParseClock(FormatClock(minute))
		require.NoError(t, err)
		assert.Equal(t, minute, got)
	}
}
