package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/internal/utils"
	"github.com/MKhiriev/mock-user-auth/internal/validators"
	"github.com/MKhiriev/mock-user-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing, and a SessionRegistry for token revocation.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions tracks issued token sessions so that account deletion and
	// administrative wipes invalidate outstanding tokens.
	sessions *SessionRegistry

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	// Zero selects bcrypt.DefaultCost.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and SessionRegistry and populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state other than the
// registry is read-only after construction.
func NewAuthService(userRepository store.UserRepository, sessions *SessionRegistry, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account from an already validated registration.
//
// The plain-text password is hashed with bcrypt before it reaches the
// repository; the stored record never contains the original value.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the registration carries empty fields.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, registration validators.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		log.Error().Str("email", registration.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hashPassword(registration.Password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	registeredUser, err := a.userRepository.Create(ctx, models.User{
		Name:         registration.Name,
		Email:        registration.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", registration.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed session token.
//
// The account is looked up by email and the supplied password is compared
// against the stored bcrypt hash. An unknown email and a wrong password are
// indistinguishable to the caller: both fail with ErrIncorrectCredentials.
//
// On success the new token's session is registered so that it can later be
// revoked, and the token model is returned.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.Token{}, ErrIncorrectCredentials
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().Str("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.Token{}, ErrIncorrectCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.sessions.Add(token.SessionID, foundUser.ID, token.RegisteredClaims.ExpiresAt.Time)

	return token, nil
}

// VerifyToken validates a raw JWT string and resolves it to a live session.
//
// Beyond signature, issuer, and expiry checks, the token's session must
// still be registered (not revoked) and the owning account must still
// exist. Any failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Error().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	userID, active := a.sessions.Active(token.SessionID)
	if !active || userID != token.UserID {
		log.Error().Str("sessionID", token.SessionID).Msg("token session is revoked or unknown")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err := a.userRepository.FindByID(ctx, token.UserID); err != nil {
		log.Error().Err(err).Str("id", token.UserID).Msg("token owner no longer exists")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// hashPassword derives the bcrypt hash stored in place of the plain-text
// password. The configured cost is used when set, bcrypt.DefaultCost otherwise.
func (a *authService) hashPassword(password string) (string, error) {
	cost := a.bcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
