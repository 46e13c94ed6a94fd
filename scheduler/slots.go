package scheduler

import (
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

// Slot is a contiguous, unconsumed interval of study availability within one
// day. Slots are ephemeral: the planner advances Start as it allocates time.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the remaining whole minutes in the slot.
func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// SlotsForDay lays out the available study slots for one calendar day.
// date must be a midnight timestamp in the profile's location. When date is
// the current day and now is already inside the window, the window start is
// clipped to now so nothing is scheduled in the past. A degenerate window
// (start at or past end) yields no slots.
func SlotsForDay(date time.Time, profile *domain.Profile, now time.Time) []Slot {
	if profile == nil || profile.SessionMinutes <= 0 {
		return nil
	}

	start := profile.WindowStart.On(date)
	end := profile.WindowEnd.On(date)

	if sameDay(date, now) && now.After(start) {
		start = now
	}

	session := time.Duration(profile.SessionMinutes) * time.Minute
	pause := time.Duration(profile.BreakMinutes) * time.Minute

	var slots []Slot
	for cursor := start; !cursor.Add(session).After(end); cursor = cursor.Add(session + pause) {
		slots = append(slots, Slot{Start: cursor, End: cursor.Add(session)})
	}
	return slots
}

func sameDay(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(date.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
