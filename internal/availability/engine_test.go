package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStores implements the three engine store interfaces in memory.
type fakeStores struct {
	window    *WorkingWindow
	windowErr error

	ranges    []DateRange
	rangesErr error

	booked    []BookedInterval
	bookedErr error

	windowCalls int
	rangeCalls  int
	bookedCalls int
}

func (f *fakeStores) WorkingWindow(_ context.Context, _ uuid.UUID, _ time.Weekday) (*WorkingWindow, error) {
	f.windowCalls++
	return f.window, f.windowErr
}

func (f *fakeStores) TimeOffRanges(_ context.Context, _ uuid.UUID) ([]DateRange, error) {
	f.rangeCalls++
	return f.ranges, f.rangesErr
}

func (f *fakeStores) BookedIntervals(_ context.Context, _ uuid.UUID, _ time.Time) ([]BookedInterval, error) {
	f.bookedCalls++
	return f.booked, f.bookedErr
}

func newTestEngine(stores *fakeStores, now time.Time) *Engine {
	return NewEngine(stores, stores, stores, func() time.Time { return now })
}

func mins(h, m int) int { return h*60 + m }

func intPtr(n int) *int { return &n }

var (
	testStaffID = uuid.MustParse("5e0f8c62-3a78-4b6f-9c11-2d4a8a0f1b3c")
	testDate    = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	// A clock on a different calendar day, so no past-time cutoff applies.
	dayBefore = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
)

func slotByTime(t *testing.T, slots []Slot, clock string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s
		}
	}
	t.Fatalf("no slot at %s", clock)
	return Slot{}
}

func TestComputeSlots_FullOpenDay(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)

	// 09:00 through 17:30 at 15-minute steps, every one available.
	require.Len(t, slots, 35)
	assert.Equal(t, Slot{Time: "09:00", Available: true}, slots[0])
	assert.Equal(t, Slot{Time: "17:30", Available: true}, slots[34])
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be available", s.Time)
	}
}

func TestComputeSlots_ConflictMarking(t *testing.T) {
	// Confirmed appointment 10:00-10:45; any 30-minute candidate overlapping
	// [10:00,10:45) is unavailable but still returned.
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
		booked: []BookedInterval{
			{StartMinute: mins(10, 0), EndMinute: intPtr(mins(10, 45))},
		},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	require.Len(t, slots, 35)

	for _, clock := range []string{"09:45", "10:00", "10:15", "10:30"} {
		assert.False(t, slotByTime(t, slots, clock).Available, "slot %s should conflict", clock)
	}
	assert.True(t, slotByTime(t, slots, "09:30").Available)
	assert.True(t, slotByTime(t, slots, "10:45").Available)
}

func TestComputeSlots_BackToBackIsNotAConflict(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(12, 0)},
		booked: []BookedInterval{
			{StartMinute: mins(10, 0), EndMinute: intPtr(mins(10, 30))},
		},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)

	// Half-open intervals: a slot ending exactly at 10:00 or starting exactly
	// at 10:30 does not overlap [10:00,10:30).
	assert.True(t, slotByTime(t, slots, "09:30").Available)
	assert.True(t, slotByTime(t, slots, "10:30").Available)
	assert.False(t, slotByTime(t, slots, "09:45").Available)
	assert.False(t, slotByTime(t, slots, "10:15").Available)
}

func TestComputeSlots_TimeOffPrecedence(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
		ranges: []DateRange{
			{
				StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			},
		},
		booked: []BookedInterval{{StartMinute: mins(10, 0), EndMinute: intPtr(mins(10, 30))}},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots, "blocked day must be an empty sequence, not a nil failure")
	assert.Zero(t, stores.bookedCalls, "ledger must not be consulted on a blocked day")
}

func TestComputeSlots_OverlappingTimeOffRanges(t *testing.T) {
	// Overlapping ranges are tolerated and checked independently.
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
		ranges: []DateRange{
			{
				StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			},
			{
				StartDate: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_DisabledOrMissingDay(t *testing.T) {
	testCases := []struct {
		name   string
		window *WorkingWindow
	}{
		{name: "weekday disabled", window: &WorkingWindow{Enabled: false, StartMinute: mins(9, 0), EndMinute: mins(18, 0)}},
		{name: "no schedule row", window: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stores := &fakeStores{window: tc.window}
			engine := newTestEngine(stores, dayBefore)

			slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
			require.NoError(t, err)
			assert.Empty(t, slots)
			assert.NotNil(t, slots)
		})
	}
}

func TestComputeSlots_WindowShorterThanDuration(t *testing.T) {
	// 600-minute service against a 540-minute window.
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 600)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_LastSlotMustFitEntirely(t *testing.T) {
	// 09:00-10:00 window, 45-minute service: only 09:00 and 09:15 fit.
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(10, 0)},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 45)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:15", slots[1].Time)
}

func TestComputeSlots_PastTimesOnCurrentDay(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
	}

	// Clock reads 14:20 on the requested date: the first offered slot is 14:30.
	now := time.Date(2025, 6, 11, 14, 20, 0, 0, time.UTC)
	engine := newTestEngine(stores, now)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:30", slots[0].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)
}

func TestComputeSlots_SlotAtCurrentMinuteIsExcluded(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
	}

	// A slot starting exactly at the current clock time is not strictly later,
	// so it is skipped as well.
	now := time.Date(2025, 6, 11, 14, 30, 0, 0, time.UTC)
	engine := newTestEngine(stores, now)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:45", slots[0].Time)
}

func TestComputeSlots_Granularity(t *testing.T) {
	// All starts are exact 15-minute offsets from the window start, even when
	// the window itself starts off the quarter hour.
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 5), EndMinute: mins(11, 0)},
	}
	engine := newTestEngine(stores, dayBefore)

	slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for i, s := range slots {
		expected := FormatClock(mins(9, 5) + i*SlotStepMinutes)
		assert.Equal(t, expected, s.Time)
	}
}

func TestComputeSlots_EndMinuteFallbacks(t *testing.T) {
	testCases := []struct {
		name        string
		booked      BookedInterval
		unavailable []string
		available   []string
	}{
		{
			name:        "explicit end wins",
			booked:      BookedInterval{StartMinute: mins(10, 0), EndMinute: intPtr(mins(11, 0)), ServiceDurationMinutes: intPtr(15)},
			unavailable: []string{"10:45"},
			available:   []string{"11:00"},
		},
		{
			name:        "linked service duration",
			booked:      BookedInterval{StartMinute: mins(10, 0), ServiceDurationMinutes: intPtr(45)},
			unavailable: []string{"10:30"},
			available:   []string{"10:45"},
		},
		{
			name: "requested duration as conservative estimate",
			// 30-minute request: the booked interval is assumed to span
			// [10:00,10:30).
			booked:      BookedInterval{StartMinute: mins(10, 0)},
			unavailable: []string{"10:15"},
			available:   []string{"10:30"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stores := &fakeStores{
				window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
				booked: []BookedInterval{tc.booked},
			}
			engine := newTestEngine(stores, dayBefore)

			slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
			require.NoError(t, err)
			for _, clock := range tc.unavailable {
				assert.False(t, slotByTime(t, slots, clock).Available, "slot %s should conflict", clock)
			}
			for _, clock := range tc.available {
				assert.True(t, slotByTime(t, slots, clock).Available, "slot %s should be free", clock)
			}
		})
	}
}

func TestComputeSlots_InvalidDuration(t *testing.T) {
	stores := &fakeStores{
		window: &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
	}
	engine := newTestEngine(stores, dayBefore)

	for _, duration := range []int{0, -30} {
		slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, duration)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Nil(t, slots)
	}
	assert.Zero(t, stores.windowCalls, "invalid requests must be rejected before any store access")
}

func TestComputeSlots_StoreFailuresPropagate(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name   string
		stores *fakeStores
	}{
		{
			name:   "schedule store",
			stores: &fakeStores{windowErr: storeErr},
		},
		{
			name: "time-off store",
			stores: &fakeStores{
				window:    &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
				rangesErr: storeErr,
			},
		},
		{
			name: "appointment ledger",
			stores: &fakeStores{
				window:    &WorkingWindow{Enabled: true, StartMinute: mins(9, 0), EndMinute: mins(18, 0)},
				bookedErr: storeErr,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestEngine(tc.stores, dayBefore)

			slots, err := engine.ComputeSlots(context.Background(), testStaffID, testDate, 30)
			require.ErrorIs(t, err, storeErr, "failures must never collapse into an empty slot list")
			assert.Nil(t, slots)
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, r.Contains(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 6, 11, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)))
}
