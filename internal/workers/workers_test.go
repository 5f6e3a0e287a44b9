// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestSessionSweeper_RemovesExpiredSessions(t *testing.T) {
	registry := service.NewSessionRegistry()
	registry.Add("expired", "user-1", time.Now().Add(-time.Minute))
	registry.Add("live", "user-2", time.Now().Add(time.Hour))

	sweeper := NewSessionSweeper(registry, 5*time.Millisecond, logger.Nop())
	sweeper.Run()

	// Give the sweeper a generous number of ticks, then verify there is
	// nothing left for a manual sweep to collect.
	time.Sleep(250 * time.Millisecond)
	if removed := registry.Sweep(time.Now()); removed != 0 {
		t.Errorf("sweeper left %d expired session(s) behind", removed)
	}

	if _, ok := registry.Active("live"); !ok {
		t.Error("live session must survive the sweep")
	}
}

func TestNewSessionSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewSessionSweeper(service.NewSessionRegistry(), 0, logger.Nop())

	if sweeper.interval != defaultSweepInterval {
		t.Errorf("expected default interval %v, got %v", defaultSweepInterval, sweeper.interval)
	}
}
