// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeleteAllUsers_Success verifies the 200 response with the success
// message and the removed-records count.
func TestDeleteAllUsers_Success(t *testing.T) {
	users := &mockUserService{
		deleteAllFn: func(_ context.Context, adminKey string) (int64, error) {
			assert.Equal(t, "keyadmin123", adminKey)
			return 3, nil
		},
	}
	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/all-users",
		strings.NewReader(`{"key_admin":"keyadmin123"}`))
	rec := httptest.NewRecorder()

	h.deleteAllUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Users deleted with success", body["message"])
	assert.Equal(t, float64(3), body["count"])
}

// TestDeleteAllUsers_InvalidKey verifies the 403 response for wrong, absent,
// and non-string admin keys, and for undecodable bodies.
func TestDeleteAllUsers_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong key", `{"key_admin":"not-the-key"}`},
		{"absent key", `{}`},
		{"numeric key", `{"key_admin":123}`},
		{"malformed JSON", `{invalid`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				deleteAllFn: func(_ context.Context, adminKey string) (int64, error) {
					return 0, service.ErrInvalidAdminKey
				},
			}
			h := newTestHandler(t, nil, users)
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/all-users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.deleteAllUsers(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

// TestDeleteAllUsers_UnexpectedError verifies that unknown service errors
// map to 500 Internal Server Error.
func TestDeleteAllUsers_UnexpectedError(t *testing.T) {
	users := &mockUserService{
		deleteAllFn: func(_ context.Context, _ string) (int64, error) {
			return 0, errors.New("boom")
		},
	}
	h := newTestHandler(t, nil, users)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/all-users",
		strings.NewReader(`{"key_admin":"keyadmin123"}`))
	rec := httptest.NewRecorder()

	h.deleteAllUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
