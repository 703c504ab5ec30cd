package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"clubhub-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

const apiBaseURL = "https://slack.com/api"

// Client wraps the Slack Web API calls used for onboarding: user lookup,
// workspace invites and channel management.
type Client struct {
	botToken         string
	teamID           string
	defaultChannelID string
	client           *resty.Client
}

func NewClient(botToken, teamID, defaultChannelID string) *Client {
	return &Client{
		botToken:         botToken,
		teamID:           teamID,
		defaultChannelID: defaultChannelID,
		client:           resty.New().SetBaseURL(apiBaseURL),
	}
}

// apiResponse is the envelope every Slack Web API method returns.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
	Channel struct {
		ID string `json:"id"`
	} `json:"channel"`
}

// LookupUserByEmail resolves a workspace user id from an email address.
func (c *Client) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	logger.ExternalServiceCall("slack", "users.lookupByEmail")
	res, err := c.call(ctx, "users.lookupByEmail", map[string]string{"email": email})
	logger.ExternalServiceResult("slack", "users.lookupByEmail", err)
	if err != nil {
		return "", err
	}
	return res.User.ID, nil
}

// InviteToWorkspace sends a workspace invite. Inviting someone who is
// already a member reports success: the outcome the caller wants holds.
func (c *Client) InviteToWorkspace(ctx context.Context, email string) error {
	logger.ExternalServiceCall("slack", "admin.users.invite")
	_, err := c.call(ctx, "admin.users.invite", map[string]string{
		"team_id":     c.teamID,
		"email":       email,
		"channel_ids": c.defaultChannelID,
	})
	if isAlreadySatisfied(err) {
		err = nil
	}
	logger.ExternalServiceResult("slack", "admin.users.invite", err)
	return err
}

// CreateChannel creates a public channel and returns its id.
func (c *Client) CreateChannel(ctx context.Context, name string) (string, error) {
	logger.ExternalServiceCall("slack", "conversations.create", "name", name)
	res, err := c.call(ctx, "conversations.create", map[string]string{
		"name": ChannelName(name),
	})
	logger.ExternalServiceResult("slack", "conversations.create", err)
	if err != nil {
		return "", err
	}
	return res.Channel.ID, nil
}

// AddUserToChannel adds a workspace user to a channel. Already-in-channel
// reports success.
func (c *Client) AddUserToChannel(ctx context.Context, channelID, slackUserID string) error {
	logger.ExternalServiceCall("slack", "conversations.invite", "channel", channelID)
	_, err := c.call(ctx, "conversations.invite", map[string]string{
		"channel": channelID,
		"users":   slackUserID,
	})
	if isAlreadySatisfied(err) {
		err = nil
	}
	logger.ExternalServiceResult("slack", "conversations.invite", err)
	return err
}

func (c *Client) call(ctx context.Context, method string, form map[string]string) (*apiResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.botToken).
		SetFormData(form).
		Post("/" + method)
	if err != nil {
		return nil, fmt.Errorf("slack %s: %w", method, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("slack %s: status %d", method, resp.StatusCode())
	}

	var res apiResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("slack %s: decode response: %w", method, err)
	}
	if !res.OK {
		return nil, &APIError{Method: method, Code: res.Error}
	}
	return &res, nil
}

// APIError is a Slack-level failure (HTTP 200 with ok=false).
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack %s: %s", e.Method, e.Code)
}

// isAlreadySatisfied reports whether the API error means the requested
// state already holds.
func isAlreadySatisfied(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	switch apiErr.Code {
	case "already_in_team", "already_invited", "already_in_channel", "already_in_team_invited_user":
		return true
	}
	return false
}

// ChannelName converts a project or class name into a valid Slack channel
// name: lowercase, dashes for separators, 80 char cap.
func ChannelName(name string) string {
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
	out := strings.TrimRight(b.String(), "-")
	if len(out) > 80 {
		out = out[:80]
	}
	return out
}
