package domain

import (
	"testing"
	"time"
)

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    MinuteOfDay
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{"9:5", 545, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseMinuteOfDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMinuteOfDay(%q): expected error, got %v", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMinuteOfDay(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMinuteOfDay(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestMinuteOfDayString(t *testing.T) {
	if got := MinuteOfDay(540).String(); got != "09:00" {
		t.Errorf("String() = %q, want 09:00", got)
	}
	if got := MinuteOfDay(23*60 + 5).String(); got != "23:05" {
		t.Errorf("String() = %q, want 23:05", got)
	}
}

func TestMinuteOfDayOn(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	date := time.Date(2026, time.March, 10, 17, 45, 12, 0, loc)

	got := MinuteOfDay(9 * 60).On(date)
	want := time.Date(2026, time.March, 10, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("On() location = %v, want %v", got.Location(), loc)
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("user-1")

	if p.UserID != "user-1" {
		t.Errorf("UserID = %q", p.UserID)
	}
	if p.WindowStart.String() != "09:00" || p.WindowEnd.String() != "21:00" {
		t.Errorf("window = %s-%s, want 09:00-21:00", p.WindowStart, p.WindowEnd)
	}
	if p.SessionMinutes != 50 || p.BreakMinutes != 15 {
		t.Errorf("session/break = %d/%d, want 50/15", p.SessionMinutes, p.BreakMinutes)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default profile should validate: %v", err)
	}
}

func TestProfileLocationFallback(t *testing.T) {
	p := &Profile{UserID: "u", Timezone: "Not/AZone"}
	if loc := p.Location(); loc != time.UTC {
		t.Errorf("unknown timezone should fall back to UTC, got %v", loc)
	}

	p.Timezone = ""
	if loc := p.Location(); loc != time.UTC {
		t.Errorf("empty timezone should fall back to UTC, got %v", loc)
	}
}

func TestProfileValidate(t *testing.T) {
	valid := func() *Profile {
		p := DefaultProfile("user-1")
		return p
	}

	cases := []struct {
		name    string
		mutate  func(*Profile)
		wantErr bool
	}{
		{"defaults", func(p *Profile) {}, false},
		{"session too short", func(p *Profile) { p.SessionMinutes = 10 }, true},
		{"session too long", func(p *Profile) { p.SessionMinutes = 180 }, true},
		{"break too short", func(p *Profile) { p.BreakMinutes = 2 }, true},
		{"break too long", func(p *Profile) { p.BreakMinutes = 90 }, true},
		{"goal too low", func(p *Profile) { p.DailyHoursGoal = 0.5 }, true},
		{"goal too high", func(p *Profile) { p.DailyHoursGoal = 13 }, true},
		{"bad timezone", func(p *Profile) { p.Timezone = "Mars/Olympus" }, true},
		{"missing user", func(p *Profile) { p.UserID = "" }, true},
		{"inverted window allowed", func(p *Profile) { p.WindowStart = 22 * 60; p.WindowEnd = 9 * 60 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(p)
			err := p.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
