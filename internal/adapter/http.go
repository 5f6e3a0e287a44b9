package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/utils"
	"github.com/MKhiriev/mock-user-auth/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Server, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account fields to
// POST /api/v1/users. Registration does not issue a token; the caller
// authenticates separately.
func (h *httpServerAdapter) Register(ctx context.Context, name, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}).
		Post("/api/v1/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Authenticate implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth and stores the token from the response body.
func (h *httpServerAdapter) Authenticate(ctx context.Context, email, password string) (string, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":    email,
			"password": password,
		}).
		SetResult(&tokenResponse).
		Post("/api/v1/auth")
	if err != nil {
		return "", fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if tokenResponse.Token == "" {
		return "", fmt.Errorf("authenticate: empty token in response")
	}

	h.SetToken(tokenResponse.Token)
	return tokenResponse.Token, nil
}

// GetUser implements [ServerAdapter]. It GETs the authenticated profile
// from GET /api/v1/users.
func (h *httpServerAdapter) GetUser(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token).
		SetResult(&profile).
		Get("/api/v1/users")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// UpdateUser implements [ServerAdapter]. It PATCHes the supplied patch
// fields to PATCH /api/v1/users. Nil fields are omitted from the body so
// the server leaves them untouched.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	body := map[string]string{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Email != nil {
		body["email"] = *patch.Email
	}
	if patch.Password != nil {
		body["password"] = *patch.Password
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.token).
		SetBody(body).
		Patch("/api/v1/users")
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [ServerAdapter]. It DELETEs the authenticated
// account via DELETE /api/v1/users and clears the stored token, which the
// server has revoked.
func (h *httpServerAdapter) DeleteUser(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token).
		Delete("/api/v1/users")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.token = ""
	return nil
}

// DeleteAllUsers implements [ServerAdapter]. It DELETEs every account via
// DELETE /api/v1/all-users, authorizing with the key_admin body field, and
// returns the removed-records count.
func (h *httpServerAdapter) DeleteAllUsers(ctx context.Context, adminKey string) (int64, error) {
	var bulkResponse models.BulkDeleteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"key_admin": adminKey}).
		SetResult(&bulkResponse).
		Delete("/api/v1/all-users")
	if err != nil {
		return 0, fmt.Errorf("delete all users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.token = ""
	return bulkResponse.Count, nil
}
