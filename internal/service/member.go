package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type memberService struct {
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
}

func NewMemberService(profileRepo repository.ProfileRepository, roleRepo repository.RoleRepository) MemberService {
	return &memberService{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
	}
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

func (s *memberService) GetProfile(ctx context.Context, userID string) (*domain.Profile, domain.Role, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", fmt.Errorf("%w: profile for user %s", ErrNotFound, userID)
		}
		return nil, "", fmt.Errorf("failed to get profile: %w", err)
	}

	role, err := s.roleRepo.GetRole(ctx, userID)
	if err != nil {
		// A profile without a role row is a prospect that has not been
		// assigned anything yet.
		if errors.Is(err, sql.ErrNoRows) {
			return profile, domain.RoleProspect, nil
		}
		return nil, "", fmt.Errorf("failed to get role: %w", err)
	}
	return profile, role, nil
}

func (s *memberService) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	role, err := s.roleRepo.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoleProspect, nil
		}
		return "", err
	}
	return role, nil
}
