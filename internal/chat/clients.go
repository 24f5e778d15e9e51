package chat

//go:generate mockgen -destination=./clients_mock_test.go -package=chat -source=clients.go UserClient

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

// UserClient resolves thread participants to public profiles.
type UserClient interface {
	GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error)
}

type httpUserClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewHTTPUserClient(baseURL string) UserClient {
	return &httpUserClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

// GetUsersInfo makes an http call to the UserService as the calling user.
func (c *httpUserClient) GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error) {
	reqBody, err := json.Marshal(map[string][]string{"uids": uids})
	if err != nil {
		return nil, fmt.Errorf("could not marshal users info request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/users/info/v1", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create users info http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
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
