package transport

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TTL      int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

type ProfileUpdateRequest struct {
	StudyWindowStart string  `json:"study_window_start"`
	StudyWindowEnd   string  `json:"study_window_end"`
	SessionMinutes   int     `json:"session_minutes"`
	BreakMinutes     int     `json:"break_minutes"`
	DailyHoursGoal   float64 `json:"daily_hours_goal"`
	Timezone         string  `json:"timezone"`
	AutoReplan       bool    `json:"auto_replan"`
}

type CourseRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type TaskRequest struct {
	ID               string  `json:"id"`
	CourseID         *string `json:"course_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	DueDate          string  `json:"due_date"`
	Priority         int     `json:"priority"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Status           string  `json:"status"`
}

type SessionRequest struct {
	ID        string  `json:"id"`
	TaskID    *string `json:"task_id"`
	CourseID  *string `json:"course_id"`
	Title     string  `json:"title"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes"`
}

type GenerateScheduleRequest struct {
	Days int `json:"days"`
}
