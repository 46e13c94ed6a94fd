package domain

import "time"

// DefaultCourseColor is the hex color assigned when a course has none.
const DefaultCourseColor = "#3b82f6"

// Course groups tasks and study sessions under a subject a user is taking.
type Course struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Course) Validate() error {
	if c == nil || c.UserID == "" || c.Name == "" {
		return ErrInvalidPayload
	}
	return nil
}
