package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDirectorySvc() (DirectoryService, *MockProjectRepo, *MockClassRepo, *MockEventRepo, *MockSemesterRepo) {
	projectRepo := new(MockProjectRepo)
	classRepo := new(MockClassRepo)
	eventRepo := new(MockEventRepo)
	semesterRepo := new(MockSemesterRepo)
	return NewDirectoryService(projectRepo, classRepo, eventRepo, semesterRepo), projectRepo, classRepo, eventRepo, semesterRepo
}

func TestDirectoryService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, _, eventRepo, _ := newDirectorySvc()
		start := time.Now()
		eventRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.ID != ""
		})).Return(nil).Once()

		err := svc.CreateEvent(ctx, &domain.Event{Name: "Demo Night", StartsAt: start, EndsAt: start.Add(2 * time.Hour)})
		assert.NoError(t, err)
	})

	t.Run("EndsBeforeStarts", func(t *testing.T) {
		svc, _, _, eventRepo, _ := newDirectorySvc()
		start := time.Now()

		err := svc.CreateEvent(ctx, &domain.Event{Name: "Demo Night", StartsAt: start, EndsAt: start.Add(-time.Hour)})
		assert.Error(t, err)
		eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingName", func(t *testing.T) {
		svc, _, _, _, _ := newDirectorySvc()
		err := svc.CreateEvent(ctx, &domain.Event{})
		assert.Error(t, err)
	})
}

func TestDirectoryService_RecordAttendance(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, _, eventRepo, _ := newDirectorySvc()
		eventRepo.On("GetByID", ctx, "event-1").Return(&domain.Event{ID: "event-1"}, nil)
		eventRepo.On("RecordAttendance", ctx, mock.MatchedBy(func(a *domain.EventAttendance) bool {
			return a.EventID == "event-1" && a.UserID == "user-1"
		})).Return(nil).Once()

		err := svc.RecordAttendance(ctx, "event-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("DoubleCheckInIsNoop", func(t *testing.T) {
		svc, _, _, eventRepo, _ := newDirectorySvc()
		eventRepo.On("GetByID", ctx, "event-1").Return(&domain.Event{ID: "event-1"}, nil)
		eventRepo.On("RecordAttendance", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		err := svc.RecordAttendance(ctx, "event-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("UnknownEvent", func(t *testing.T) {
		svc, _, _, eventRepo, _ := newDirectorySvc()
		eventRepo.On("GetByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		err := svc.RecordAttendance(ctx, "missing", "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
		eventRepo.AssertNotCalled(t, "RecordAttendance", mock.Anything, mock.Anything)
	})
}
