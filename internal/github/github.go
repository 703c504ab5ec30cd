package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clubhub-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

const apiBaseURL = "https://api.github.com"

// Client wraps the GitHub REST API calls used for project bootstrap:
// team creation, membership, repository creation, team access and branch
// protection.
type Client struct {
	org    string
	token  string
	client *resty.Client
}

func NewClient(org, token string) *Client {
	return &Client{
		org:   org,
		token: token,
		client: resty.New().
			SetBaseURL(apiBaseURL).
			SetHeader("Accept", "application/vnd.github+json"),
	}
}

// EnsureTeam returns the slug of the org team with the given name,
// creating it if it does not exist.
func (c *Client) EnsureTeam(ctx context.Context, name string) (string, error) {
	slug := Slugify(name)

	logger.ExternalServiceCall("github", "get team", "slug", slug)
	resp, err := c.req(ctx).Get(fmt.Sprintf("/orgs/%s/teams/%s", c.org, slug))
	if err != nil {
		return "", fmt.Errorf("github get team: %w", err)
	}
	if resp.StatusCode() == http.StatusOK {
		return slug, nil
	}
	if resp.StatusCode() != http.StatusNotFound {
		return "", apiError("get team", resp)
	}

	logger.ExternalServiceCall("github", "create team", "name", name)
	resp, err = c.req(ctx).
		SetBody(map[string]any{"name": name, "privacy": "closed"}).
		Post(fmt.Sprintf("/orgs/%s/teams", c.org))
	if err != nil {
		return "", fmt.Errorf("github create team: %w", err)
	}
	if resp.IsError() {
		return "", apiError("create team", resp)
	}

	var created struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("github create team: decode response: %w", err)
	}
	return created.Slug, nil
}

// AddTeamMember adds a user to a team. The endpoint is an idempotent PUT.
func (c *Client) AddTeamMember(ctx context.Context, teamSlug, username string) error {
	logger.ExternalServiceCall("github", "add team member", "team", teamSlug, "user", username)
	resp, err := c.req(ctx).
		SetBody(map[string]string{"role": "member"}).
		Put(fmt.Sprintf("/orgs/%s/teams/%s/memberships/%s", c.org, teamSlug, username))
	if err != nil {
		return fmt.Errorf("github add team member: %w", err)
	}
	if resp.IsError() {
		return apiError("add team member", resp)
	}
	return nil
}

// EnsureRepo returns the name of the org repository, creating a private
// repo if it does not exist.
func (c *Client) EnsureRepo(ctx context.Context, name string) (string, error) {
	repo := Slugify(name)

	logger.ExternalServiceCall("github", "get repo", "repo", repo)
	resp, err := c.req(ctx).Get(fmt.Sprintf("/repos/%s/%s", c.org, repo))
	if err != nil {
		return "", fmt.Errorf("github get repo: %w", err)
	}
	if resp.StatusCode() == http.StatusOK {
		return repo, nil
	}
	if resp.StatusCode() != http.StatusNotFound {
		return "", apiError("get repo", resp)
	}

	logger.ExternalServiceCall("github", "create repo", "repo", repo)
	resp, err = c.req(ctx).
		SetBody(map[string]any{"name": repo, "private": true, "auto_init": true}).
		Post(fmt.Sprintf("/orgs/%s/repos", c.org))
	if err != nil {
		return "", fmt.Errorf("github create repo: %w", err)
	}
	if resp.IsError() {
		return "", apiError("create repo", resp)
	}
	return repo, nil
}

// GrantTeamRepoAccess gives a team push access to a repository.
func (c *Client) GrantTeamRepoAccess(ctx context.Context, teamSlug, repo string) error {
	logger.ExternalServiceCall("github", "grant team repo access", "team", teamSlug, "repo", repo)
	resp, err := c.req(ctx).
		SetBody(map[string]string{"permission": "push"}).
		Put(fmt.Sprintf("/orgs/%s/teams/%s/repos/%s/%s", c.org, teamSlug, c.org, repo))
	if err != nil {
		return fmt.Errorf("github grant team repo access: %w", err)
	}
	if resp.IsError() {
		return apiError("grant team repo access", resp)
	}
	return nil
}

// SetBranchProtection restricts direct pushes on a branch to the given
// teams and users.
func (c *Client) SetBranchProtection(ctx context.Context, repo, branch string, teams, users []string) error {
	if teams == nil {
		teams = []string{}
	}
	if users == nil {
		users = []string{}
	}
	body := map[string]any{
		"required_status_checks":        nil,
		"enforce_admins":                false,
		"required_pull_request_reviews": nil,
		"restrictions": map[string]any{
			"teams": teams,
			"users": users,
		},
	}

	logger.ExternalServiceCall("github", "set branch protection", "repo", repo, "branch", branch)
	resp, err := c.req(ctx).
		SetBody(body).
		Put(fmt.Sprintf("/repos/%s/%s/branches/%s/protection", c.org, repo, branch))
	if err != nil {
		return fmt.Errorf("github set branch protection: %w", err)
	}
	if resp.IsError() {
		return apiError("set branch protection", resp)
	}
	return nil
}

func (c *Client) req(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx).SetAuthToken(c.token)
}

func apiError(operation string, resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	if body.Message != "" {
		return fmt.Errorf("github %s: status %d: %s", operation, resp.StatusCode(), body.Message)
	}
	return fmt.Errorf("github %s: status %d", operation, resp.StatusCode())
}

// Slugify converts a project name to a team/repo slug the way GitHub
// does: lowercase with dashes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
