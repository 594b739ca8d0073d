// Package client provides the HTTP client the onboarding pipeline uses to
// create and read back accounts on the signup API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/models"
)

// SignupRequest is the body of POST /api/signup. Nil fields are sent as JSON
// null. PasswordHash carries the secret as entered; the server hashes it.
type SignupRequest struct {
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PasswordHash *string `json:"passwordHash"`
}

// SignupClient communicates with the signup API.
type SignupClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSignupClient creates a new signup API client.
func NewSignupClient(baseURL string, httpClient *http.Client) *SignupClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SignupClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// CreateAccount creates an account and returns the stored record.
// A non-201 response becomes a PERSISTENCE_FAILED error whose message is the
// server's error text; an expired deadline becomes TIMEOUT.
func (c *SignupClient) CreateAccount(ctx context.Context, body SignupRequest) (*models.Account, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling signup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/signup", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, remoteError(resp, "Signup failed")
	}

	var account models.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, apperrors.Persistence("Signup failed", fmt.Errorf("decoding signup response: %w", err))
	}
	if account.ID == "" {
		return nil, apperrors.Persistence("Signup failed", errors.New("signup response has no account id"))
	}
	return &account, nil
}

// GetAccount reads an account back by its identifier.
func (c *SignupClient) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/accounts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, apperrors.ErrAccountNotFound
	default:
		return nil, remoteError(resp, "Could not load account")
	}

	var account models.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, apperrors.Persistence("Could not load account", fmt.Errorf("decoding account response: %w", err))
	}
	return &account, nil
}

// remoteError turns a failed response into a PERSISTENCE_FAILED error carrying
// the body's {"error": "..."} text, or fallback when the body has none.
func remoteError(resp *http.Response, fallback string) error {
	var body struct {
		Error string `json:"error"`
	}
	message := fallback
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	return apperrors.Persistence(message, fmt.Errorf("unexpected status %d", resp.StatusCode))
}

func transportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrap(apperrors.ErrTimeout, err)
	}
	return apperrors.Persistence("Unable to reach the signup service", err)
}
