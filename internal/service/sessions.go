// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

// session is the registry's record of one issued token.
type session struct {
	userID    string
	expiresAt time.Time
}

// SessionRegistry tracks which token sessions are currently live. A session
// is registered when a token is issued and stays valid until it expires,
// the owning account is deleted, or an administrative wipe revokes
// everything.
//
// Sessions are keyed by the token's "jti" claim and indexed by user ID, so
// revoking a user invalidates every token that user ever received while
// leaving other users' tokens untouched. Expired entries are garbage;
// [SessionRegistry.Sweep] removes them so the registry stays bounded by the
// number of live tokens. Safe for concurrent use.
type SessionRegistry struct {
	mu sync.RWMutex

	// byID maps session ID (jti) to the session record.
	byID map[string]session

	// byUser maps user ID to the set of that user's live session IDs.
	byUser map[string]map[string]struct{}
}

// NewSessionRegistry constructs an empty SessionRegistry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		byID:   make(map[string]session),
		byUser: make(map[string]map[string]struct{}),
	}
}

// Add registers a freshly issued session for the given user. expiresAt is
// the token's expiry; after it passes, Sweep may drop the entry.
func (r *SessionRegistry) Add(sessionID, userID string, expiresAt time.Time) {
	if sessionID == "" || userID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[sessionID] = session{userID: userID, expiresAt: expiresAt}
	sessions, ok := r.byUser[userID]
	if !ok {
		sessions = make(map[string]struct{})
		r.byUser[userID] = sessions
	}
	sessions[sessionID] = struct{}{}
}

// Active reports whether the session is live and, if so, which user owns it.
// A session past its expiry is not live even if Sweep has not collected it
// yet.
func (r *SessionRegistry) Active(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[sessionID]
	if !ok {
		return "", false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", false
	}

	return s.userID, true
}

// RevokeUser invalidates every live session belonging to the given user.
func (r *SessionRegistry) RevokeUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sessionID := range r.byUser[userID] {
		delete(r.byID, sessionID)
	}
	delete(r.byUser, userID)
}

// RevokeAll invalidates every live session in the registry.
func (r *SessionRegistry) RevokeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]session)
	r.byUser = make(map[string]map[string]struct{})
}

// Sweep removes every session whose expiry is at or before now and returns
// how many entries were dropped. Tokens past expiry already fail the JWT
// "exp" check during verification; sweeping only reclaims the memory their
// registry entries hold.
func (r *SessionRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for sessionID, s := range r.byID {
		if s.expiresAt.IsZero() || s.expiresAt.After(now) {
			continue
		}

		delete(r.byID, sessionID)
		if sessions, ok := r.byUser[s.userID]; ok {
			delete(sessions, sessionID)
			if len(sessions) == 0 {
				delete(r.byUser, s.userID)
			}
		}
		removed++
	}

	return removed
}
