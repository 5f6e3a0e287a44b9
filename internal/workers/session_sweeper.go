// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
)

// defaultSweepInterval bounds how long an expired session entry can linger
// in the registry before being reclaimed.
const defaultSweepInterval = time.Minute

// SessionSweeper periodically removes expired entries from the session
// registry. Expired tokens already fail JWT verification on their own;
// sweeping keeps the registry's memory bounded by the number of live
// sessions instead of the number of tokens ever issued.
type SessionSweeper struct {
	sessions *service.SessionRegistry

	interval time.Duration

	logger *logger.Logger
}

// NewSessionSweeper constructs a sweeper for the given registry. A
// non-positive interval selects the default.
func NewSessionSweeper(sessions *service.SessionRegistry, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns a goroutine that sweeps the registry
// on every tick for the lifetime of the process.
func (s *SessionSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for now := range ticker.C {
			if removed := s.sessions.Sweep(now); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired sessions")
			}
		}
	}()
}
