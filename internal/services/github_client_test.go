package services_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubClientFor(upstream *httptest.Server) *services.GithubClient {
	return services.NewGithubClient(&config.Config{
		GithubAPIURL:   upstream.URL,
		GithubClientID: "client-id",
		GithubSecret:   "client-secret",
		GithubTimeout:  2 * time.Second,
	})
}

func TestGithubReposRelaysUpstreamBody(t *testing.T) {
	body := `[{"name":"repo-one"},{"name":"repo-two"}]`

	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer upstream.Close()

	got, err := githubClientFor(upstream).Repos("octocat")

	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, []string{"5"}, gotQuery["per_page"])
	assert.Equal(t, []string{"created:asc"}, gotQuery["sort"])
	assert.Equal(t, []string{"client-id"}, gotQuery["client_id"])
}

func TestGithubReposNon200MeansNoProfile(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	_, err := githubClientFor(upstream).Repos("nobody")

	assert.ErrorIs(t, err, services.ErrNoGithubProfile)
}

func TestGithubReposTimeoutReturnsError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer upstream.Close()

	client := services.NewGithubClient(&config.Config{
		GithubAPIURL:  upstream.URL,
		GithubTimeout: 20 * time.Millisecond,
	})

	_, err := client.Repos("octocat")

	// The call must fail instead of hanging, and with a transport
	// error rather than the not-found sentinel.
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNoGithubProfile)
}

func TestGithubReposOmitsCredentialsWhenUnset(t *testing.T) {
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	client := services.NewGithubClient(&config.Config{
		GithubAPIURL:  upstream.URL,
		GithubTimeout: 2 * time.Second,
	})

	_, err := client.Repos("octocat")

	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "client_id")
	assert.NotContains(t, gotQuery, "client_secret")
}
