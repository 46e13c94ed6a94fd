package scheduler

import (
	"testing"
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

func testProfile() *domain.Profile {
	p := domain.DefaultProfile("u1")
	return p
}

// Monday 2026-01-05.
var testDay = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func TestSlotsForDayWalksWindow(t *testing.T) {
	profile := testProfile() // 09:00-21:00, 50 min sessions, 15 min breaks
	now := testDay.Add(-24 * time.Hour)

	slots := SlotsForDay(testDay, profile, now)
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}

	first := slots[0]
	if got, want := first.Start, testDay.Add(9*time.Hour); !got.Equal(want) {
		t.Errorf("first slot starts %v, want %v", got, want)
	}
	if got, want := first.End, testDay.Add(9*time.Hour+50*time.Minute); !got.Equal(want) {
		t.Errorf("first slot ends %v, want %v", got, want)
	}

	second := slots[1]
	if got, want := second.Start, testDay.Add(10*time.Hour+5*time.Minute); !got.Equal(want) {
		t.Errorf("second slot starts %v, want %v (50 min session + 15 min break)", got, want)
	}

	last := slots[len(slots)-1]
	windowEnd := testDay.Add(21 * time.Hour)
	if last.End.After(windowEnd) {
		t.Errorf("last slot ends %v, past window end %v", last.End, windowEnd)
	}
	if got, want := last.Start, testDay.Add(19*time.Hour+50*time.Minute); !got.Equal(want) {
		t.Errorf("last slot starts %v, want %v", got, want)
	}
}

func TestSlotsForDayClipsToNowOnCurrentDay(t *testing.T) {
	profile := testProfile()
	now := testDay.Add(14*time.Hour + 30*time.Minute) // 14:30 same day

	slots := SlotsForDay(testDay, profile, now)
	if len(slots) == 0 {
		t.Fatal("expected slots in the remaining window")
	}
	if !slots[0].Start.Equal(now) {
		t.Errorf("first slot starts %v, want clipped to now %v", slots[0].Start, now)
	}
	for _, s := range slots {
		if s.Start.Before(now) {
			t.Errorf("slot %v-%v starts in the past", s.Start, s.End)
		}
	}
}

func TestSlotsForDayNoClipOnFutureDay(t *testing.T) {
	profile := testProfile()
	now := testDay.Add(-10 * time.Hour) // previous day, 14:00

	slots := SlotsForDay(testDay, profile, now)
	if len(slots) == 0 {
		t.Fatal("expected a full day of slots")
	}
	if got, want := slots[0].Start, testDay.Add(9*time.Hour); !got.Equal(want) {
		t.Errorf("first slot starts %v, want window start %v", got, want)
	}
}

func TestSlotsForDayEmptyWhenWindowPassed(t *testing.T) {
	profile := testProfile()
	now := testDay.Add(22 * time.Hour) // 22:00, past the 21:00 window end

	if slots := SlotsForDay(testDay, profile, now); len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestSlotsForDayDegenerateProfile(t *testing.T) {
	profile := testProfile()
	profile.WindowStart = profile.WindowEnd
	if slots := SlotsForDay(testDay, profile, testDay); len(slots) != 0 {
		t.Fatalf("zero-length window: expected no slots, got %d", len(slots))
	}

	profile = testProfile()
	profile.SessionMinutes = 0
	if slots := SlotsForDay(testDay, profile, testDay); len(slots) != 0 {
		t.Fatalf("zero session duration: expected no slots, got %d", len(slots))
	}
}

func TestSlotMinutes(t *testing.T) {
	s := Slot{Start: testDay, End: testDay.Add(50 * time.Minute)}
	if got := s.Minutes(); got != 50 {
		t.Errorf("Minutes() = %d, want 50", got)
	}
	s.Start = s.End
	if got := s.Minutes(); got != 0 {
		t.Errorf("consumed slot Minutes() = %d, want 0", got)
	}
}
