package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// MinuteOfDay is a wall-clock time expressed as minutes since midnight.
// It marshals as "HH:MM" so API payloads stay human-readable.
type MinuteOfDay int

// ParseMinuteOfDay parses an "HH:MM" string.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, WrapError(ErrCodeInvalid, fmt.Sprintf("invalid time %q, expected HH:MM", s), err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, NewError(ErrCodeInvalid, fmt.Sprintf("time %q out of range", s))
	}
	return MinuteOfDay(hour*60 + minute), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// On anchors the wall-clock time to the calendar day of date, in date's location.
func (m MinuteOfDay) On(date time.Time) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, int(m)/60, int(m)%60, 0, 0, date.Location())
}

func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMinuteOfDay(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Profile holds one user's study preferences. Exactly one exists per user;
// it is created together with the user at registration time.
type Profile struct {
	UserID         string      `json:"user_id"`
	WindowStart    MinuteOfDay `json:"study_window_start"`
	WindowEnd      MinuteOfDay `json:"study_window_end"`
	SessionMinutes int         `json:"session_minutes"`
	BreakMinutes   int         `json:"break_minutes"`
	DailyHoursGoal float64     `json:"daily_hours_goal"`
	Timezone       string      `json:"timezone"`
	AutoReplan     bool        `json:"auto_replan"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DefaultProfile returns the preferences assigned at registration:
// a 09:00-21:00 window with 50-minute sessions and 15-minute breaks.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID:         userID,
		WindowStart:    9 * 60,
		WindowEnd:      21 * 60,
		SessionMinutes: 50,
		BreakMinutes:   15,
		DailyHoursGoal: 4.0,
		Timezone:       "UTC",
	}
}

// Location resolves the profile timezone, falling back to UTC when the
// name is empty or unknown.
func (p *Profile) Location() *time.Location {
	if p == nil || p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate checks the configurable ranges. Window ordering is deliberately
// not validated: a start at or past the end simply yields no slots.
func (p *Profile) Validate() error {
	if p == nil || p.UserID == "" {
		return ErrInvalidPayload
	}
	if p.SessionMinutes < 20 || p.SessionMinutes > 120 {
		return NewError(ErrCodeInvalid, "session duration must be between 20 and 120 minutes")
	}
	if p.BreakMinutes < 5 || p.BreakMinutes > 60 {
		return NewError(ErrCodeInvalid, "break duration must be between 5 and 60 minutes")
	}
	if p.DailyHoursGoal < 1.0 || p.DailyHoursGoal > 12.0 {
		return NewError(ErrCodeInvalid, "daily study hours goal must be between 1 and 12")
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return WrapError(ErrCodeInvalid, "unknown timezone", err)
		}
	}
	return nil
}
