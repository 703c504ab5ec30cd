package jobs

import (
	"context"

	"clubhub-backend/internal/logger"
)

// retryBatchSize bounds how many applications one retry pass touches.
const retryBatchSize = 50

// RetryOutboxTasks re-runs pending onboarding tasks for decided
// applications whose fan-out did not complete inline. Same orchestrator,
// second trigger.
func (jr *JobRunner) RetryOutboxTasks() {
	jr.runWithRecovery("RetryOutboxTasks", func() {
		ctx := context.Background()

		appIDs, err := jr.store.OutboxRepository.ListPendingApplications(ctx, retryBatchSize)
		if err != nil {
			logger.Error("Failed to list applications with pending tasks", "error", err)
			return
		}
		if len(appIDs) == 0 {
			return
		}

		logger.Info("Retrying onboarding tasks", "applications", len(appIDs))
		for _, appID := range appIDs {
			if err := jr.services.Decision.RunPendingTasks(ctx, appID); err != nil {
				logger.Error("Onboarding retry incomplete", "application_id", appID, "error", err)
			}
		}
	})
}

// BootstrapProjectRepos provisions GitHub teams, repositories and branch
// protection for projects that gained members before their code hosting
// existed, and syncs team membership for newly linked GitHub accounts.
func (jr *JobRunner) BootstrapProjectRepos() {
	jr.runWithRecovery("BootstrapProjectRepos", func() {
		if err := jr.services.Provisioning.BootstrapProjects(context.Background()); err != nil {
			logger.Error("Project bootstrap pass incomplete", "error", err)
		}
	})
}
