package request

//go:generate mockgen -destination=./clients_mock_test.go -package=request -source=clients.go UserClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"
)

// UserClient is how the request service talks to the UserService.
type UserClient interface {
	// GetUsersInfo returns public profiles keyed by uid. Unknown uids are absent.
	GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error)
}

type httpUserClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPUserClient is the constructor.
func NewHTTPUserClient(baseURL string) UserClient {
	return &httpUserClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

type usersInfoRequest struct {
	UIDs []string `json:"uids"`
}

func (c *httpUserClient) GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error) {
	reqBody, err := json.Marshal(usersInfoRequest{UIDs: uids})
	if err != nil {
		return nil, fmt.Errorf("could not marshal users info request: %w", err)
	}

	url := c.baseURL + "/users/info/v1"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create users info http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// the user service authenticates with the caller's own token
	if token := auth.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("users info request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user service returned non-200 status: %d", resp.StatusCode)
	}

	var profiles map[string]domain.PublicProfile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return nil, fmt.Errorf("could not decode users info response: %w", err)
	}
	return profiles, nil
}
