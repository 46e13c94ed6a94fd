package domain

import "time"

// StudySession is a scheduled block of study time. Sessions are either
// generated by the planner or created manually by the user.
type StudySession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    *string   `json:"task_id,omitempty"`
	CourseID  *string   `json:"course_id,omitempty"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *StudySession) Duration() time.Duration {
	if s == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s *StudySession) Validate() error {
	if s == nil || s.UserID == "" || s.Title == "" {
		return ErrInvalidPayload
	}
	if !s.EndTime.After(s.StartTime) {
		return NewError(ErrCodeInvalid, "session end must be after start")
	}
	return nil
}

// AuthSession represents a cached login session stored in Redis.
type AuthSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *AuthSession) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
