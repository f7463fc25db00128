package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The github proxy route needs no database, so it gets handler-level
// coverage against a fake upstream.
func githubApp(upstream *httptest.Server) *fiber.App {
	client := services.NewGithubClient(&config.Config{
		GithubAPIURL:  upstream.URL,
		GithubTimeout: 2 * time.Second,
	})
	handler := handlers.NewProfileHandler(nil, client)

	app := fiber.New()
	app.Get("/api/profile/github/:username", handler.GithubRepos)
	return app
}

func TestGithubReposHandlerRelaysUpstreamJSON(t *testing.T) {
	body := `[{"name":"repo-one"},{"name":"repo-two"}]`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer upstream.Close()

	resp, err := githubApp(upstream).Test(httptest.NewRequest("GET", "/api/profile/github/octocat", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, body, string(got))
}

func TestGithubReposHandlerUpstream404Becomes404(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	resp, err := githubApp(upstream).Test(httptest.NewRequest("GET", "/api/profile/github/nobody", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "No Github profile found", got["msg"])
}

func TestGithubReposHandlerTransportErrorBecomes502(t *testing.T) {
	// Point the client at a server that is already closed.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	app := githubApp(upstream)
	upstream.Close()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/profile/github/octocat", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Failed to fetch Github repos", got["msg"])
}
