package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type provisioningService struct {
	projectRepo repository.ProjectRepository
	prov        *provisioner
}

func NewProvisioningService(
	profileRepo repository.ProfileRepository,
	projectRepo repository.ProjectRepository,
	classRepo repository.ClassRepository,
	chat ChatClient,
	codeHost CodeHostClient,
	defaultBranch string,
) ProvisioningService {
	return &provisioningService{
		projectRepo: projectRepo,
		prov:        newProvisioner(profileRepo, projectRepo, classRepo, chat, codeHost, defaultBranch),
	}
}

func (s *provisioningService) BootstrapProjects(ctx context.Context) error {
	projects, err := s.projectRepo.ListUnprovisioned(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unprovisioned projects: %w", err)
	}

	var failed int
	for i := range projects {
		project := &projects[i]
		if err := s.prov.BootstrapProject(ctx, project); err != nil {
			failed++
			logger.ErrorContext(ctx, "Project bootstrap failed", "project_id", project.ID, "error", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d project bootstraps failed", failed, len(projects))
	}
	return nil
}

// provisioner memoizes external identifiers on domain rows: resolve from
// the cached column, create through the adapter on a miss, persist
// write-through. Persists are compare-and-swap so two concurrent first
// acceptances converge on one channel instead of orphaning the loser's.
type provisioner struct {
	profileRepo   repository.ProfileRepository
	projectRepo   repository.ProjectRepository
	classRepo     repository.ClassRepository
	chat          ChatClient
	codeHost      CodeHostClient
	defaultBranch string
}

func newProvisioner(
	profileRepo repository.ProfileRepository,
	projectRepo repository.ProjectRepository,
	classRepo repository.ClassRepository,
	chat ChatClient,
	codeHost CodeHostClient,
	defaultBranch string,
) *provisioner {
	return &provisioner{
		profileRepo:   profileRepo,
		projectRepo:   projectRepo,
		classRepo:     classRepo,
		chat:          chat,
		codeHost:      codeHost,
		defaultBranch: defaultBranch,
	}
}

// ResolveSlackUserID returns the profile's chat user id, looking it up by
// email and caching it on first use.
func (p *provisioner) ResolveSlackUserID(ctx context.Context, profile *domain.Profile) (string, error) {
	if profile.SlackUserID != nil && *profile.SlackUserID != "" {
		return *profile.SlackUserID, nil
	}

	slackUserID, err := p.chat.LookupUserByEmail(ctx, profile.Email)
	if err != nil {
		return "", fmt.Errorf("failed to look up slack user: %w", err)
	}
	if err := p.profileRepo.SetSlackUserID(ctx, profile.UserID, slackUserID); err != nil {
		// The lookup succeeded; a failed cache write only costs a repeat
		// lookup next time.
		logger.Warn("Failed to cache slack user id", "user_id", profile.UserID, "error", err)
	}
	profile.SlackUserID = &slackUserID
	return slackUserID, nil
}

// EnsureTargetChannel returns the Slack channel id for the application's
// project or class, creating the channel on first use.
func (p *provisioner) EnsureTargetChannel(ctx context.Context, app *domain.Application) (string, error) {
	switch app.ApplicationType {
	case domain.ApplicationTypeProject:
		if app.ProjectID == nil {
			return "", fmt.Errorf("project application %s has no project id", app.ID)
		}
		return p.ensureProjectChannel(ctx, *app.ProjectID)
	case domain.ApplicationTypeClass:
		if app.ClassID == nil {
			return "", fmt.Errorf("class application %s has no class id", app.ID)
		}
		return p.ensureClassChannel(ctx, *app.ClassID)
	default:
		return "", fmt.Errorf("application type %s has no channel target", app.ApplicationType)
	}
}

func (p *provisioner) ensureProjectChannel(ctx context.Context, projectID string) (string, error) {
	project, err := p.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("failed to get project: %w", err)
	}
	if project.SlackChannelID != nil && *project.SlackChannelID != "" {
		return *project.SlackChannelID, nil
	}

	channelID, err := p.chat.CreateChannel(ctx, project.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create project channel: %w", err)
	}

	won, err := p.projectRepo.SetSlackChannelID(ctx, projectID, channelID)
	if err != nil {
		return "", fmt.Errorf("failed to persist project channel id: %w", err)
	}
	if !won {
		// Another acceptance provisioned the channel first; use theirs.
		refreshed, err := p.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return "", fmt.Errorf("failed to re-read project after channel race: %w", err)
		}
		if refreshed.SlackChannelID != nil {
			logger.Warn("Lost channel provisioning race", "project_id", projectID, "orphaned_channel", channelID)
			return *refreshed.SlackChannelID, nil
		}
	}
	return channelID, nil
}

func (p *provisioner) ensureClassChannel(ctx context.Context, classID string) (string, error) {
	class, err := p.classRepo.GetByID(ctx, classID)
	if err != nil {
		return "", fmt.Errorf("failed to get class: %w", err)
	}
	if class.SlackChannelID != nil && *class.SlackChannelID != "" {
		return *class.SlackChannelID, nil
	}

	channelID, err := p.chat.CreateChannel(ctx, class.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create class channel: %w", err)
	}

	won, err := p.classRepo.SetSlackChannelID(ctx, classID, channelID)
	if err != nil {
		return "", fmt.Errorf("failed to persist class channel id: %w", err)
	}
	if !won {
		refreshed, err := p.classRepo.GetByID(ctx, classID)
		if err != nil {
			return "", fmt.Errorf("failed to re-read class after channel race: %w", err)
		}
		if refreshed.SlackChannelID != nil {
			logger.Warn("Lost channel provisioning race", "class_id", classID, "orphaned_channel", channelID)
			return *refreshed.SlackChannelID, nil
		}
	}
	return channelID, nil
}

// BootstrapProject runs the code-hosting sequence for one project: ensure
// team, ensure repository, grant the team push access, sync team
// membership for members with known GitHub usernames, and protect the
// default branch so only the team and the lead can push directly.
func (p *provisioner) BootstrapProject(ctx context.Context, project *domain.Project) error {
	teamSlug, err := p.ensureTeam(ctx, project)
	if err != nil {
		return err
	}

	repo, err := p.ensureRepo(ctx, project)
	if err != nil {
		return err
	}

	if err := p.codeHost.GrantTeamRepoAccess(ctx, teamSlug, repo); err != nil {
		return fmt.Errorf("failed to grant team repo access: %w", err)
	}

	members, err := p.projectRepo.ListMembers(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to list project members: %w", err)
	}

	var leadUsernames []string
	for _, m := range members {
		profile, err := p.profileRepo.GetByUserID(ctx, m.UserID)
		if err != nil || profile.GithubUsername == nil || *profile.GithubUsername == "" {
			// Members without a linked GitHub account are picked up on the
			// next bootstrap run once they link one.
			continue
		}
		if err := p.codeHost.AddTeamMember(ctx, teamSlug, *profile.GithubUsername); err != nil {
			logger.Warn("Failed to add team member", "project_id", project.ID, "username", *profile.GithubUsername, "error", err)
			continue
		}
		if m.Role == domain.ProjectRoleLead {
			leadUsernames = append(leadUsernames, *profile.GithubUsername)
		}
	}

	if err := p.codeHost.SetBranchProtection(ctx, repo, p.defaultBranch, []string{teamSlug}, leadUsernames); err != nil {
		return fmt.Errorf("failed to set branch protection: %w", err)
	}
	return nil
}

func (p *provisioner) ensureTeam(ctx context.Context, project *domain.Project) (string, error) {
	if project.GithubTeamSlug != nil && *project.GithubTeamSlug != "" {
		return *project.GithubTeamSlug, nil
	}
	slug, err := p.codeHost.EnsureTeam(ctx, project.Name)
	if err != nil {
		return "", fmt.Errorf("failed to ensure team: %w", err)
	}
	won, err := p.projectRepo.SetGithubTeamSlug(ctx, project.ID, slug)
	if err != nil {
		return "", fmt.Errorf("failed to persist team slug: %w", err)
	}
	if !won {
		refreshed, err := p.projectRepo.GetByID(ctx, project.ID)
		if err == nil && refreshed.GithubTeamSlug != nil {
			slug = *refreshed.GithubTeamSlug
		}
	}
	project.GithubTeamSlug = &slug
	return slug, nil
}

func (p *provisioner) ensureRepo(ctx context.Context, project *domain.Project) (string, error) {
	if project.GithubRepo != nil && *project.GithubRepo != "" {
		return *project.GithubRepo, nil
	}
	repo, err := p.codeHost.EnsureRepo(ctx, project.Name)
	if err != nil {
		return "", fmt.Errorf("failed to ensure repo: %w", err)
	}
	won, err := p.projectRepo.SetGithubRepo(ctx, project.ID, repo)
	if err != nil {
		return "", fmt.Errorf("failed to persist repo name: %w", err)
	}
	if !won {
		refreshed, err := p.projectRepo.GetByID(ctx, project.ID)
		if err == nil && refreshed.GithubRepo != nil {
			repo = *refreshed.GithubRepo
		}
	}
	project.GithubRepo = &repo
	return repo, nil
}
