package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/devconnect/backend/internal/config"
)

// ErrNoGithubProfile means the upstream answered with a non-200 status,
// which the API reports as a missing GitHub profile.
var ErrNoGithubProfile = errors.New("no github profile found")

// GithubClient lists a user's most recently created repositories. The
// underlying http.Client carries an explicit timeout so a hung upstream
// can never stall a request indefinitely.
type GithubClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewGithubClient(cfg *config.Config) *GithubClient {
	return &GithubClient{
		httpClient:   &http.Client{Timeout: cfg.GithubTimeout},
		baseURL:      cfg.GithubAPIURL,
		clientID:     cfg.GithubClientID,
		clientSecret: cfg.GithubSecret,
	}
}

// Repos fetches the 5 most recently created repositories for the
// username and returns the upstream JSON verbatim.
func (c *GithubClient) Repos(username string) ([]byte, error) {
	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created:asc")
	if c.clientID != "" {
		query.Set("client_id", c.clientID)
		query.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), query.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnect")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoGithubProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}
	return body, nil
}
