package domain

import "time"

// Profile is one row per user. SlackUserID and GithubUsername are lazily
// resolved external identifiers cached back onto the row on first use.
type Profile struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	SlackUserID    *string   `json:"slack_user_id,omitempty"`
	GithubUsername *string   `json:"github_username,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Role string

const (
	RoleProspect Role = "prospect"
	RoleMember   Role = "member"
	RoleBoard    Role = "board"
	RoleEBoard   Role = "e-board"
)

// CanReview reports whether a role may decide applications.
func (r Role) CanReview() bool {
	return r == RoleBoard || r == RoleEBoard
}

// AtLeastMember reports whether a role already carries member standing or
// higher. The role-upgrade step only ever promotes prospect to member and
// never touches anything above.
func (r Role) AtLeastMember() bool {
	return r == RoleMember || r == RoleBoard || r == RoleEBoard
}

type UserRole struct {
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}
