// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/models"
	"github.com/google/uuid"
)

// memoryUserRepository is the process-local implementation of
// [UserRepository]. It is the default backend and the one the acceptance
// suites run against.
//
// A single RWMutex guards both indexes, which gives the two consistency
// guarantees the contract demands for free: check-and-insert on Create is
// atomic, and DeleteAll is serialized against concurrent registrations.
type memoryUserRepository struct {
	logger *logger.Logger

	mu      sync.RWMutex
	byEmail map[string]models.User
	idIndex map[string]string // user ID -> email
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		logger:  logger,
		byEmail: make(map[string]models.User),
		idIndex: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byEmail[user.Email] = user
	r.idIndex[user.ID] = user.Email

	return user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.idIndex[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return r.byEmail[email], nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldEmail, ok := r.idIndex[user.ID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	current := r.byEmail[oldEmail]

	// uniqueness is re-checked under the same lock that Create holds
	if user.Email != oldEmail {
		if _, taken := r.byEmail[user.Email]; taken {
			return models.User{}, ErrEmailAlreadyExists
		}
		delete(r.byEmail, oldEmail)
	}

	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()

	r.byEmail[user.Email] = user
	r.idIndex[user.ID] = user.Email

	return user, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, ok := r.idIndex[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.byEmail, email)
	delete(r.idIndex, id)

	return nil
}

func (r *memoryUserRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.byEmail))
	r.byEmail = make(map[string]models.User)
	r.idIndex = make(map[string]string)

	return count, nil
}
