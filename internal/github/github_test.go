package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("club-org", "ghp-test")
	c.client.SetBaseURL(srv.URL)
	return c
}

func TestEnsureTeam_ExistingTeam(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orgs/club-org/teams/rover", r.URL.Path)
		w.Write([]byte(`{"slug": "rover"}`))
	}))

	slug, err := c.EnsureTeam(context.Background(), "Rover")
	assert.NoError(t, err)
	assert.Equal(t, "rover", slug)
}

func TestEnsureTeam_CreatesMissingTeam(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orgs/club-org/teams/ml-study-group", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /orgs/club-org/teams", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ML Study Group", body["name"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"slug": "ml-study-group"}`))
	})
	c := newTestClient(t, mux)

	slug, err := c.EnsureTeam(context.Background(), "ML Study Group")
	assert.NoError(t, err)
	assert.Equal(t, "ml-study-group", slug)
}

func TestEnsureRepo_CreatesPrivateRepo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/club-org/rover", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /orgs/club-org/repos", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rover", body["name"])
		assert.Equal(t, true, body["private"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"name": "rover"}`))
	})
	c := newTestClient(t, mux)

	repo, err := c.EnsureRepo(context.Background(), "Rover")
	assert.NoError(t, err)
	assert.Equal(t, "rover", repo)
}

func TestSetBranchProtection_RestrictsTeamsAndUsers(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/repos/club-org/rover/branches/main/protection", r.URL.Path)

		var body struct {
			Restrictions struct {
				Teams []string `json:"teams"`
				Users []string `json:"users"`
			} `json:"restrictions"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"rover"}, body.Restrictions.Teams)
		assert.Equal(t, []string{"lead"}, body.Restrictions.Users)
		w.Write([]byte(`{}`))
	}))

	err := c.SetBranchProtection(context.Background(), "rover", "main", []string{"rover"}, []string{"lead"})
	assert.NoError(t, err)
}

func TestSetBranchProtection_NilSlicesBecomeEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		restrictions := body["restrictions"].(map[string]any)
		assert.NotNil(t, restrictions["teams"])
		assert.NotNil(t, restrictions["users"])
		w.Write([]byte(`{}`))
	}))

	err := c.SetBranchProtection(context.Background(), "rover", "main", nil, nil)
	assert.NoError(t, err)
}

func TestAddTeamMember_ErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "user is not a member of the organization"}`))
	}))

	err := c.AddTeamMember(context.Background(), "rover", "ghost")
	assert.ErrorContains(t, err, "user is not a member of the organization")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ml-study-group", Slugify("ML Study Group"))
	assert.Equal(t, "rover-2026", Slugify("Rover 2026!"))
}
