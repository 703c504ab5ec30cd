package domain

import "time"

type TaskKind string

// Onboarding task kinds, in the order they must run for one acceptance.
// The role upgrade comes first: roster rows and channel membership are
// meaningless without member standing.
const (
	TaskRoleUpgrade      TaskKind = "role_upgrade"
	TaskRosterInsert     TaskKind = "roster_insert"
	TaskChannelProvision TaskKind = "channel_provision"
	TaskChatInvite       TaskKind = "chat_invite"
	TaskGithubBootstrap  TaskKind = "github_bootstrap"
	TaskDecisionEmail    TaskKind = "decision_email"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusFailed  TaskStatus = "failed"
)

// OutboxTask is one enqueued onboarding side effect for a decided
// application. The decision commit is the durability boundary; tasks are
// best-effort afterwards, executed inline once and retried by the
// scheduler while pending. Every task is idempotent so re-running a
// partially onboarded application is safe.
type OutboxTask struct {
	ID            int64      `json:"id"`
	ApplicationID string     `json:"application_id"`
	Kind          TaskKind   `json:"kind"`
	Seq           int32      `json:"seq"`
	Status        TaskStatus `json:"status"`
	Attempts      int32      `json:"attempts"`
	LastError     string     `json:"last_error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
