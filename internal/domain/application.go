package domain

import "time"

type ApplicationType string

const (
	ApplicationTypeClubAdmission ApplicationType = "club_admission"
	ApplicationTypeBoard         ApplicationType = "board"
	ApplicationTypeProject       ApplicationType = "project"
	ApplicationTypeClass         ApplicationType = "class"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a request from a user to join a board position, project,
// or class, subject to admin approval.
type Application struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	ApplicationType ApplicationType   `json:"application_type"`
	Status          ApplicationStatus `json:"status"`
	ProjectID       *string           `json:"project_id,omitempty"`
	ClassID         *string           `json:"class_id,omitempty"`
	BoardPosition   string            `json:"board_position,omitempty"`
	ProjectRole     string            `json:"project_role,omitempty"` // "lead" or "member"
	ClassRole       string            `json:"class_role,omitempty"`   // "teacher" or "student"
	Note            string            `json:"note,omitempty"`
	ReviewedBy      *string           `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`

	// TargetName is the joined project/class name, populated on reads that
	// resolve the optional target. Not a column of applications.
	TargetName string `json:"target_name,omitempty"`
}

// HasRosterTarget reports whether acceptance of this application creates a
// roster membership (only project and class applications do).
func (a *Application) HasRosterTarget() bool {
	return a.ApplicationType == ApplicationTypeProject || a.ApplicationType == ApplicationTypeClass
}
