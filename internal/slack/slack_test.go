package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("xoxb-test", "T001", "C-general")
	c.client.SetBaseURL(srv.URL)
	return c
}

func TestLookupUserByEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.lookupByEmail", r.URL.Path)
		assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "a@club.edu", r.PostFormValue("email"))
		w.Write([]byte(`{"ok": true, "user": {"id": "U123"}}`))
	})

	id, err := c.LookupUserByEmail(context.Background(), "a@club.edu")
	assert.NoError(t, err)
	assert.Equal(t, "U123", id)
}

func TestLookupUserByEmail_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error": "users_not_found"}`))
	})

	_, err := c.LookupUserByEmail(context.Background(), "missing@club.edu")
	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, "users_not_found", apiErr.Code)
}

func TestInviteToWorkspace_AlreadyInTeamIsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin.users.invite", r.URL.Path)
		w.Write([]byte(`{"ok": false, "error": "already_in_team"}`))
	})

	err := c.InviteToWorkspace(context.Background(), "a@club.edu")
	assert.NoError(t, err)
}

func TestCreateChannel_SlugifiesName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "ml-study-group", r.PostFormValue("name"))
		w.Write([]byte(`{"ok": true, "channel": {"id": "C456"}}`))
	})

	id, err := c.CreateChannel(context.Background(), "ML Study Group!")
	assert.NoError(t, err)
	assert.Equal(t, "C456", id)
}

func TestAddUserToChannel_AlreadyInChannelIsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error": "already_in_channel"}`))
	})

	err := c.AddUserToChannel(context.Background(), "C456", "U123")
	assert.NoError(t, err)
}

func TestChannelName(t *testing.T) {
	cases := map[string]string{
		"Rover":               "rover",
		"ML Study Group!":     "ml-study-group",
		"  Intro   to  Go  ":  "intro-to-go",
		"2026 Web Dev (Fall)": "2026-web-dev-fall",
	}
	for in, want := range cases {
		assert.Equal(t, want, ChannelName(in), "input %q", in)
	}
}
