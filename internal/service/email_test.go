package service

import (
	"testing"

	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDecisionMessage(t *testing.T) {
	t.Run("AcceptedProject", func(t *testing.T) {
		app := &domain.Application{
			ApplicationType: domain.ApplicationTypeProject,
			Status:          domain.ApplicationStatusAccepted,
			TargetName:      "Rover",
		}
		subject, body := decisionMessage("Ada", app)
		assert.Equal(t, "Accepted: Project Application - Rover", subject)
		assert.Contains(t, body, "Hello Ada")
		assert.Contains(t, body, "Rover project team")
		assert.Contains(t, body, "Slack invite")
	})

	t.Run("AcceptedClass", func(t *testing.T) {
		app := &domain.Application{
			ApplicationType: domain.ApplicationTypeClass,
			Status:          domain.ApplicationStatusAccepted,
			TargetName:      "Intro to Go",
		}
		subject, body := decisionMessage("Ada", app)
		assert.Equal(t, "Accepted: Class Application - Intro to Go", subject)
		assert.Contains(t, body, "enrolled in Intro to Go")
	})

	t.Run("RejectedBoard", func(t *testing.T) {
		app := &domain.Application{
			ApplicationType: domain.ApplicationTypeBoard,
			Status:          domain.ApplicationStatusRejected,
			BoardPosition:   "Treasurer",
		}
		subject, body := decisionMessage("Ada", app)
		assert.Equal(t, "Update on your application: Board Application - Treasurer", subject)
		assert.Contains(t, body, "unable to accept")
		assert.NotContains(t, body, "Slack invite")
	})

	t.Run("AcceptedAdmission", func(t *testing.T) {
		app := &domain.Application{
			ApplicationType: domain.ApplicationTypeClubAdmission,
			Status:          domain.ApplicationStatusAccepted,
		}
		subject, _ := decisionMessage("Ada", app)
		assert.Equal(t, "Accepted: Club Application", subject)
	})
}
