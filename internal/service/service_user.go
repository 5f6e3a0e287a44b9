package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService. It exposes
// profile reads, partial updates, self-deletion, and the administrative
// bulk wipe on top of a UserRepository.
type userService struct {
	// userRepository is the data-access layer for user records.
	userRepository store.UserRepository

	// sessions is revoked from here when accounts disappear, so that tokens
	// bound to deleted users stop verifying immediately.
	sessions *SessionRegistry

	// adminKey authorizes the bulk wipe. Comes from configuration only;
	// there is no built-in fallback.
	adminKey string

	// bcryptCost is the bcrypt work factor used when an update changes the
	// password. Zero selects bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and SessionRegistry.
func NewUserService(userRepository store.UserRepository, sessions *SessionRegistry, cfg config.Auth, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessions:       sessions,
		adminKey:       cfg.AdminKey,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Get returns the account record for the given user ID.
//
// Returns store.ErrUserNotFound (wrapped) if the account no longer exists.
func (u *userService) Get(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user ID provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by ID failed")
		return models.User{}, fmt.Errorf("user search by ID failed: %w", err)
	}

	return foundUser, nil
}

// Update applies a partial update to the account identified by userID.
//
// Only the fields present in the patch change. A new password is hashed
// with bcrypt before storage. The token session stays valid across the
// update, including email changes, because tokens are bound to the user ID.
//
// Returns the updated record or:
//   - ErrInvalidDataProvided if userID is empty or the patch is empty.
//   - store.ErrUserNotFound (wrapped) if the account no longer exists.
//   - store.ErrEmailAlreadyExists (wrapped) if the new email is taken.
func (u *userService) Update(ctx context.Context, userID string, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" || patch.Empty() {
		log.Error().Str("id", userID).Msg("invalid update data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by ID failed")
		return models.User{}, fmt.Errorf("user search by ID failed: %w", err)
	}

	if patch.Name != nil {
		foundUser.Name = *patch.Name
	}
	if patch.Email != nil {
		foundUser.Email = *patch.Email
	}
	if patch.Password != nil {
		passwordHash, hashErr := u.hashPassword(*patch.Password)
		if hashErr != nil {
			log.Err(hashErr).Str("id", userID).Msg("password hashing ended with error")
			return models.User{}, fmt.Errorf("password hashing ended with error: %w", hashErr)
		}
		foundUser.PasswordHash = passwordHash
	}
	foundUser.UpdatedAt = time.Now()

	updatedUser, err := u.userRepository.Update(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Delete removes the account identified by userID and revokes every token
// session that account holds. After the call any outstanding token for the
// user fails verification.
func (u *userService) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user ID provided")
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.Delete(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	u.sessions.RevokeUser(userID)

	return nil
}

// DeleteAll wipes every user record after checking the administrative key,
// then revokes every live token session. Returns how many records were
// removed.
//
// The key comparison is constant-time. An empty or wrong key fails with
// ErrInvalidAdminKey; the wipe does not run.
func (u *userService) DeleteAll(ctx context.Context, adminKey string) (int64, error) {
	log := logger.FromContext(ctx)

	if u.adminKey == "" || subtle.ConstantTimeCompare([]byte(adminKey), []byte(u.adminKey)) != 1 {
		log.Error().Msg("bulk delete rejected: invalid admin key")
		return 0, ErrInvalidAdminKey
	}

	count, err := u.userRepository.DeleteAll(ctx)
	if err != nil {
		log.Err(err).Msg("bulk deletion ended with error")
		return 0, fmt.Errorf("bulk deletion ended with error: %w", err)
	}

	u.sessions.RevokeAll()

	return count, nil
}

// hashPassword derives the bcrypt hash stored in place of the plain-text
// password. The configured cost is used when set, bcrypt.DefaultCost otherwise.
func (u *userService) hashPassword(password string) (string, error) {
	cost := u.bcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
