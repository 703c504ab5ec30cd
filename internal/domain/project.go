package domain

import "time"

// Project carries cached provisioning links (Slack channel, GitHub team
// and repo) created on first use and reused thereafter.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	SemesterID     *string   `json:"semester_id,omitempty"`
	SlackChannelID *string   `json:"slack_channel_id,omitempty"`
	GithubTeamSlug *string   `json:"github_team_slug,omitempty"`
	GithubRepo     *string   `json:"github_repo,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProjectMember struct {
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // "lead" or "member"
	JoinedAt  time.Time `json:"joined_at"`
}

const (
	ProjectRoleLead   = "lead"
	ProjectRoleMember = "member"
)
