// Package availability computes the bookable time slots of a staff member for a
// given calendar date. The engine is a stateless, read-only projection over three
// narrow stores (weekly schedule, time-off ranges, appointment ledger); it is
// recomputed fresh on every request and holds no resources between calls.
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotStepMinutes is the fixed granularity of candidate slot start times.
const SlotStepMinutes = 15

// ErrInvalidDuration is returned when the requested service duration is not a
// positive number of minutes. It is rejected before any store access.
var ErrInvalidDuration = errors.New("service duration must be a positive number of minutes")

// WorkingWindow is the enabled start/end time-of-day of a staff member on one
// weekday. Minutes are minute-of-day integers; when Enabled, StartMinute < EndMinute.
type WorkingWindow struct {
	Enabled     bool
	StartMinute int
	EndMinute   int
}

// DateRange is an inclusive range of calendar dates (time-of-day is ignored).
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// Contains reports whether the given calendar date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	y, m, d := date.Date()
	sy, sm, sd := r.StartDate.Date()
	ey, em, ed := r.EndDate.Date()
	after := y > sy || (y == sy && (m > sm || (m == sm && d >= sd)))
	before := y < ey || (y == ey && (m < em || (m == em && d <= ed)))
	return after && before
}

// BookedInterval is an existing pending/confirmed appointment as the engine sees
// it. EndMinute may be absent; ServiceDurationMinutes carries the linked
// service's duration when the ledger could resolve it.
type BookedInterval struct {
	StartMinute            int
	EndMinute              *int
	ServiceDurationMinutes *int
}

// end resolves the interval's end minute: the explicit end when present, else
// start plus the linked service's duration, else start plus the requested
// duration as a conservative estimate.
func (b BookedInterval) end(requestedDuration int) int {
	if b.EndMinute != nil {
		return *b.EndMinute
	}
	if b.ServiceDurationMinutes != nil {
		return b.StartMinute + *b.ServiceDurationMinutes
	}
	return b.StartMinute + requestedDuration
}

// Slot is a candidate appointment start time paired with an availability flag.
// Unavailable slots are returned too so callers can render them disabled and
// keep the grid visually stable.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ScheduleStore looks up the working window of a staff member on a weekday.
// A nil window means no row is configured for that weekday.
type ScheduleStore interface {
	WorkingWindow(ctx context.Context, staffID uuid.UUID, weekday time.Weekday) (*WorkingWindow, error)
}

// TimeOffStore lists the closed date ranges of a staff member.
type TimeOffStore interface {
	TimeOffRanges(ctx context.Context, staffID uuid.UUID) ([]DateRange, error)
}

// AppointmentStore lists the pending/confirmed appointment intervals of a staff
// member on a date.
type AppointmentStore interface {
	BookedIntervals(ctx context.Context, staffID uuid.UUID, date time.Time) ([]BookedInterval, error)
}

// Engine computes bookable slots from the three injected stores.
type Engine struct {
	schedules    ScheduleStore
	timeOff      TimeOffStore
	appointments AppointmentStore
	now          func() time.Time
}

// NewEngine creates an Engine. The now func is the engine's clock, used to drop
// already-past slots on the current day; pass nil for time.Now.
func NewEngine(schedules ScheduleStore, timeOff TimeOffStore, appointments AppointmentStore, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		schedules:    schedules,
		timeOff:      timeOff,
		appointments: appointments,
		now:          now,
	}
}

// ComputeSlots returns the ordered candidate slots for the staff member on the
// given date for a service of the given duration.
//
// An empty slice with a nil error means the day offers no slots (weekday
// disabled, date inside a time-off range, or window shorter than the duration);
// that is a normal outcome, not a failure. Store errors are propagated wrapped
// and never collapsed into an empty result.
func (e *Engine) ComputeSlots(ctx context.Context, staffID uuid.UUID, date time.Time, serviceDurationMinutes int) ([]Slot, error) {
	if serviceDurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	window, err := e.schedules.WorkingWindow(ctx, staffID, date.Weekday())
	if err != nil {
		return nil, fmt.Errorf("load working window: %w", err)
	}
	if window == nil || !window.Enabled {
		return []Slot{}, nil
	}

	// Full-day time-off blocks take precedence over everything else; the
	// appointment ledger is not even consulted.
	ranges, err := e.timeOff.TimeOffRanges(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("load time off: %w", err)
	}
	for _, r := range ranges {
		if r.Contains(date) {
			return []Slot{}, nil
		}
	}

	booked, err := e.appointments.BookedIntervals(ctx, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("load booked intervals: %w", err)
	}

	// On the current day, slots starting at or before the present clock time
	// are never offered.
	cutoff := -1
	if now := e.now(); sameDate(now, date) {
		cutoff = minuteOfDay(now)
	}

	slots := []Slot{}
	for start := window.StartMinute; start+serviceDurationMinutes <= window.EndMinute; start += SlotStepMinutes {
		if start <= cutoff {
			continue
		}
		slots = append(slots, Slot{
			Time:      FormatClock(start),
			Available: !overlapsAny(start, start+serviceDurationMinutes, booked, serviceDurationMinutes),
		})
	}
	return slots, nil
}

func overlapsAny(start, end int, booked []BookedInterval, requestedDuration int) bool {
	for _, b := range booked {
		// Half-open intervals: [start,end) overlaps [b.start,b.end) iff
		// start < b.end && b.start < end.
		if start < b.end(requestedDuration) && b.StartMinute < end {
			return true
		}
	}
	return false
}
