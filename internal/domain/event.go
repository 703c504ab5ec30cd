package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	SemesterID  *string   `json:"semester_id,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventAttendance struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	RecordedAt time.Time `json:"recorded_at"`
}
