package offer

//go:generate mockgen -destination=./clients_mock_test.go -package=offer -source=clients.go UserClient,ChatClient

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

// This file defines the clients the OfferService needs to talk to the other services.

// UserClient is the contract for talking to the UserService.
type UserClient interface {
	// GetUsersInfo returns public profiles keyed by uid. Unknown uids are absent.
	GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error)
}

// ChatClient is for talking to the ChatService.
type ChatClient interface {
	// PostOfferMessage puts a message referencing offerID into a thread.
	PostOfferMessage(ctx context.Context, threadID, offerID, text string) error
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

type usersInfoRequest struct {
	UIDs []string `json:"uids"`
}

func (c *httpUserClient) GetUsersInfo(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error) {
	reqBody, err := json.Marshal(usersInfoRequest{UIDs: uids})
	if err != nil {
		return nil, fmt.Errorf("could not marshal users info request: %w", err)
	}

	req, err := newAuthedRequest(ctx, c.baseURL+"/users/info/v1", reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not create users info http request: %w", err)
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

type httpChatClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPChatClient is the constructor for the real Chat client.
func NewHTTPChatClient(baseURL string) ChatClient {
	return &httpChatClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

type postMessageRequest struct {
	Text    string `json:"text"`
	OfferID string `json:"offerId"`
}

// PostOfferMessage makes an http call to the ChatService as the calling user.
func (c *httpChatClient) PostOfferMessage(ctx context.Context, threadID, offerID, text string) error {
	reqBody, err := json.Marshal(postMessageRequest{Text: text, OfferID: offerID})
	if err != nil {
		return fmt.Errorf("could not marshal chat message: %w", err)
	}

	req, err := newAuthedRequest(ctx, c.baseURL+"/chat/threads/"+threadID+"/messages", reqBody)
	if err != nil {
		return fmt.Errorf("could not create chat http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chat message request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat service returned status: %d", resp.StatusCode)
	}
	return nil
}

// newAuthedRequest builds a JSON POST carrying the caller's bearer token.
func newAuthedRequest(ctx context.Context, url string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := auth.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
