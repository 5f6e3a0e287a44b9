// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	myHTTP "github.com/MKhiriev/mock-user-auth/internal/handler/http"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminKey = "keyadmin123"

// startTestServer boots the full stack (memory store, real services, real
// router) on an httptest server and returns an adapter pointed at it.
func startTestServer(t *testing.T) ServerAdapter {
	t.Helper()

	log := logger.Nop()
	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "acceptance-sign-key",
			TokenIssuer:   "mock-user-auth",
			TokenDuration: time.Hour,
			AdminKey:      testAdminKey,
			BcryptCost:    bcrypt.MinCost,
		},
	}

	storages := store.Storages{UserRepository: store.NewMemoryUserRepository(log)}
	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	client, err := NewHTTPServerAdapter(config.Server{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	return client
}

func register(t *testing.T, client ServerAdapter, name, email, password string) {
	t.Helper()
	require.NoError(t, client.Register(context.Background(), name, email, password))
}

// ─────────────────────────────────────────────
// Registration
// ─────────────────────────────────────────────

func TestAdapter_RegisterAndAuthenticate(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")

	token, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, client.Token())
}

func TestAdapter_RegisterDuplicateEmail(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")

	err := client.Register(ctx, "imposter", "john_doe@gmail.com", "password456")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "User already registered")
}

func TestAdapter_RegisterValidationFailures(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	err := client.Register(ctx, "john", "invalid-email", "password123")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid email format")

	err = client.Register(ctx, "john", "john@gmail.com", "123")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Password must be at least 6 characters")

	err = client.Register(ctx, "", "john@gmail.com", "password123")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Missing required fields")
}

// ─────────────────────────────────────────────
// Authentication
// ─────────────────────────────────────────────

func TestAdapter_AuthenticateWrongPassword(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")

	_, err := client.Authenticate(ctx, "john_doe@gmail.com", "wrongpass")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestAdapter_AuthenticateUnknownEmail(t *testing.T) {
	client := startTestServer(t)

	_, err := client.Authenticate(context.Background(), "ghost@gmail.com", "password123")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_AuthenticateMissingFields(t *testing.T) {
	client := startTestServer(t)

	_, err := client.Authenticate(context.Background(), "", "")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Missing required fields")
}

// ─────────────────────────────────────────────
// Profile
// ─────────────────────────────────────────────

func TestAdapter_GetUser(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	_, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)

	profile, err := client.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john_doe", profile.Name)
	assert.Equal(t, "john_doe@gmail.com", profile.Email)
	assert.NotEmpty(t, profile.ID)
}

func TestAdapter_GetUserWithoutToken(t *testing.T) {
	client := startTestServer(t)

	_, err := client.GetUser(context.Background())
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAdapter_GetUserWithFabricatedToken(t *testing.T) {
	client := startTestServer(t)
	client.SetToken("eyJhbGciOi.fabricated.token")

	_, err := client.GetUser(context.Background())
	require.ErrorIs(t, err, ErrForbidden)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestAdapter_UpdateEmailOnly(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	_, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)

	newEmail := "new@gmail.com"
	require.NoError(t, client.UpdateUser(ctx, models.UserPatch{Email: &newEmail}))

	// The token survives the email change and other fields stay intact.
	profile, err := client.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new@gmail.com", profile.Email)
	assert.Equal(t, "john_doe", profile.Name)

	// The new email is the login identity now.
	_, err = client.Authenticate(ctx, "new@gmail.com", "password123")
	assert.NoError(t, err)
}

func TestAdapter_UpdatePassword(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	_, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)

	newPassword := "newsecret456"
	require.NoError(t, client.UpdateUser(ctx, models.UserPatch{Password: &newPassword}))

	_, err = client.Authenticate(ctx, "john_doe@gmail.com", "newsecret456")
	assert.NoError(t, err)

	_, err = client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_UpdateEmptyPatch(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	_, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)

	err = client.UpdateUser(ctx, models.UserPatch{})
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestAdapter_UpdateWithoutToken(t *testing.T) {
	client := startTestServer(t)

	name := "nobody"
	err := client.UpdateUser(context.Background(), models.UserPatch{Name: &name})
	require.ErrorIs(t, err, ErrForbidden)
}

// ─────────────────────────────────────────────
// Deletion
// ─────────────────────────────────────────────

func TestAdapter_DeleteUserRevokesToken(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	token, err := client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	require.NoError(t, err)

	require.NoError(t, client.DeleteUser(ctx))
	assert.Empty(t, client.Token())

	// The revoked token no longer authenticates anything.
	client.SetToken(token)
	_, err = client.GetUser(ctx)
	assert.ErrorIs(t, err, ErrForbidden)

	// And the account is gone.
	_, err = client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_DeleteAllUsers(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")
	register(t, client, "jane_doe", "jane_doe@gmail.com", "password456")

	count, err := client.DeleteAllUsers(ctx, testAdminKey)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Wiped accounts cannot authenticate any more.
	_, err = client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_DeleteAllUsersWrongKey(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	register(t, client, "john_doe", "john_doe@gmail.com", "password123")

	_, err := client.DeleteAllUsers(ctx, "not-the-key")
	require.ErrorIs(t, err, ErrForbidden)

	// Nothing was wiped.
	_, err = client.Authenticate(ctx, "john_doe@gmail.com", "password123")
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// Base URL handling
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:8080", "http://localhost:8080", false},
		{"bare host", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
