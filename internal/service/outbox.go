package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

// maxTaskAttempts retires a task after repeated failures so the retry job
// does not hammer a permanently broken integration forever.
const maxTaskAttempts = 5

// RunPendingTasks executes the pending onboarding tasks of one decided
// application in sequence order. Each task failure is recorded on the
// task and never stops the remaining tasks: every task is idempotent and
// independent with respect to correctness, only their ordering matters.
func (s *decisionService) RunPendingTasks(ctx context.Context, applicationID string) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to load application for fan-out: %w", err)
	}
	profile, err := s.profileRepo.GetByUserID(ctx, app.UserID)
	if err != nil {
		return fmt.Errorf("failed to load applicant profile for fan-out: %w", err)
	}

	tasks, err := s.outboxRepo.ListPending(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to list pending tasks: %w", err)
	}

	var failed int
	for _, task := range tasks {
		if err := s.runTask(ctx, app, profile, &task); err != nil {
			failed++
			final := task.Attempts+1 >= maxTaskAttempts
			logger.ErrorContext(ctx, "Onboarding task failed",
				"application_id", applicationID, "kind", task.Kind, "attempt", task.Attempts+1, "final", final, "error", err)
			if markErr := s.outboxRepo.MarkFailed(ctx, task.ID, err.Error(), final); markErr != nil {
				logger.ErrorContext(ctx, "Failed to record task failure", "task_id", task.ID, "error", markErr)
			}
			continue
		}
		if err := s.outboxRepo.MarkDone(ctx, task.ID); err != nil {
			logger.ErrorContext(ctx, "Failed to mark task done", "task_id", task.ID, "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d onboarding tasks failed", failed, len(tasks))
	}
	return nil
}

func (s *decisionService) runTask(ctx context.Context, app *domain.Application, profile *domain.Profile, task *domain.OutboxTask) error {
	switch task.Kind {
	case domain.TaskRoleUpgrade:
		return s.upgradeRole(ctx, app.UserID)
	case domain.TaskRosterInsert:
		return s.insertRosterRow(ctx, app)
	case domain.TaskChannelProvision:
		_, err := s.prov.EnsureTargetChannel(ctx, app)
		return err
	case domain.TaskChatInvite:
		return s.inviteToChat(ctx, app, profile)
	case domain.TaskGithubBootstrap:
		return s.bootstrapGithub(ctx, app)
	case domain.TaskDecisionEmail:
		return s.emailSvc.SendDecisionEmail(ctx, profile.Email, profile.FullName, app)
	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

// upgradeRole promotes a prospect to member. Any other current role is
// left untouched: the upgrade is monotonic and never downgrades.
func (s *decisionService) upgradeRole(ctx context.Context, userID string) error {
	role, err := s.roleRepo.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.roleRepo.SetRole(ctx, userID, domain.RoleMember)
		}
		return fmt.Errorf("failed to read current role: %w", err)
	}
	if role.AtLeastMember() {
		return nil
	}
	return s.roleRepo.SetRole(ctx, userID, domain.RoleMember)
}

// insertRosterRow creates the membership row for the application's
// target. A duplicate row means a previous run already satisfied it.
func (s *decisionService) insertRosterRow(ctx context.Context, app *domain.Application) error {
	switch app.ApplicationType {
	case domain.ApplicationTypeProject:
		if app.ProjectID == nil {
			return fmt.Errorf("project application %s has no project id", app.ID)
		}
		role := app.ProjectRole
		if role == "" {
			role = domain.ProjectRoleMember
		}
		err := s.projectRepo.AddMember(ctx, &domain.ProjectMember{
			ProjectID: *app.ProjectID,
			UserID:    app.UserID,
			Role:      role,
		})
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	case domain.ApplicationTypeClass:
		if app.ClassID == nil {
			return fmt.Errorf("class application %s has no class id", app.ID)
		}
		role := app.ClassRole
		if role == "" {
			role = domain.ClassRoleStudent
		}
		err := s.classRepo.AddEnrollment(ctx, &domain.ClassEnrollment{
			ClassID: *app.ClassID,
			UserID:  app.UserID,
			Role:    role,
		})
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("application type %s has no roster target", app.ApplicationType)
	}
}

func (s *decisionService) inviteToChat(ctx context.Context, app *domain.Application, profile *domain.Profile) error {
	if err := s.chat.InviteToWorkspace(ctx, profile.Email); err != nil {
		return fmt.Errorf("failed to invite to workspace: %w", err)
	}
	slackUserID, err := s.prov.ResolveSlackUserID(ctx, profile)
	if err != nil {
		return err
	}
	// Cache hit after the channel_provision task ran; creates the channel
	// if that task is still pending from an earlier failed run.
	channelID, err := s.prov.EnsureTargetChannel(ctx, app)
	if err != nil {
		return err
	}
	return s.chat.AddUserToChannel(ctx, channelID, slackUserID)
}

func (s *decisionService) bootstrapGithub(ctx context.Context, app *domain.Application) error {
	if app.ProjectID == nil {
		return fmt.Errorf("project application %s has no project id", app.ID)
	}
	project, err := s.projectRepo.GetByID(ctx, *app.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	return s.prov.BootstrapProject(ctx, project)
}
