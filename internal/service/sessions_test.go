// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func farFuture() time.Time {
	return time.Now().Add(time.Hour)
}

func TestSessionRegistry_AddAndActive(t *testing.T) {
	registry := NewSessionRegistry()

	registry.Add("session-1", "user-1", farFuture())

	userID, ok := registry.Active("session-1")
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestSessionRegistry_UnknownSession(t *testing.T) {
	registry := NewSessionRegistry()

	_, ok := registry.Active("never-issued")
	assert.False(t, ok)
}

func TestSessionRegistry_ExpiredSessionNotActive(t *testing.T) {
	registry := NewSessionRegistry()

	registry.Add("session-1", "user-1", time.Now().Add(-time.Second))

	_, ok := registry.Active("session-1")
	assert.False(t, ok)
}

func TestSessionRegistry_IgnoresEmptyKeys(t *testing.T) {
	registry := NewSessionRegistry()

	registry.Add("", "user-1", farFuture())
	registry.Add("session-1", "", farFuture())

	_, ok := registry.Active("")
	assert.False(t, ok)
	_, ok = registry.Active("session-1")
	assert.False(t, ok)
}

func TestSessionRegistry_RevokeUser(t *testing.T) {
	registry := NewSessionRegistry()
	registry.Add("session-1", "user-1", farFuture())
	registry.Add("session-2", "user-1", farFuture())
	registry.Add("session-3", "user-2", farFuture())

	registry.RevokeUser("user-1")

	_, ok := registry.Active("session-1")
	assert.False(t, ok)
	_, ok = registry.Active("session-2")
	assert.False(t, ok)

	// Other users' sessions survive.
	userID, ok := registry.Active("session-3")
	assert.True(t, ok)
	assert.Equal(t, "user-2", userID)
}

func TestSessionRegistry_RevokeAll(t *testing.T) {
	registry := NewSessionRegistry()
	registry.Add("session-1", "user-1", farFuture())
	registry.Add("session-2", "user-2", farFuture())

	registry.RevokeAll()

	_, ok := registry.Active("session-1")
	assert.False(t, ok)
	_, ok = registry.Active("session-2")
	assert.False(t, ok)

	// The registry keeps working after a wipe.
	registry.Add("session-4", "user-4", farFuture())
	userID, ok := registry.Active("session-4")
	assert.True(t, ok)
	assert.Equal(t, "user-4", userID)
}

func TestSessionRegistry_Sweep(t *testing.T) {
	registry := NewSessionRegistry()
	registry.Add("expired-1", "user-1", time.Now().Add(-time.Minute))
	registry.Add("expired-2", "user-1", time.Now().Add(-time.Second))
	registry.Add("live-1", "user-1", farFuture())
	registry.Add("live-2", "user-2", farFuture())

	removed := registry.Sweep(time.Now())

	assert.Equal(t, 2, removed)

	_, ok := registry.Active("expired-1")
	assert.False(t, ok)
	_, ok = registry.Active("live-1")
	assert.True(t, ok)
	_, ok = registry.Active("live-2")
	assert.True(t, ok)
}

func TestSessionRegistry_SweepEmptyRegistry(t *testing.T) {
	registry := NewSessionRegistry()

	assert.Equal(t, 0, registry.Sweep(time.Now()))
}

func TestSessionRegistry_ConcurrentUse(t *testing.T) {
	registry := NewSessionRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sessionID := fmt.Sprintf("session-%d", n)
			userID := fmt.Sprintf("user-%d", n%4)
			registry.Add(sessionID, userID, farFuture())
			registry.Active(sessionID)
			switch n % 4 {
			case 0:
				registry.RevokeUser(userID)
			case 1:
				registry.Sweep(time.Now())
			}
		}(i)
	}
	wg.Wait()

	// No assertion beyond absence of data races; -race covers the rest.
}
