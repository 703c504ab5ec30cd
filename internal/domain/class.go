package domain

import "time"

type Class struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	SemesterID     *string   `json:"semester_id,omitempty"`
	SlackChannelID *string   `json:"slack_channel_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ClassEnrollment struct {
	ClassID  string    `json:"class_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"` // "teacher" or "student"
	JoinedAt time.Time `json:"joined_at"`
}

const (
	ClassRoleTeacher = "teacher"
	ClassRoleStudent = "student"
)
