package validators

import (
	"testing"

	"github.com/MKhiriev/mock-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// ValidateRegistration
// ─────────────────────────────────────────────

func TestValidateRegistration_Valid(t *testing.T) {
	v := NewUserValidator()

	got, err := v.ValidateRegistration(models.UserPayload{
		Name:     "john_doe",
		Email:    "john_doe@gmail.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, Registration{
		Name:     "john_doe",
		Email:    "john_doe@gmail.com",
		Password: "password123",
	}, got)
}

func TestValidateRegistration_TrimsWhitespace(t *testing.T) {
	v := NewUserValidator()

	got, err := v.ValidateRegistration(models.UserPayload{
		Name:     "  alice  ",
		Email:    " alice@gmail.com ",
		Password: " alicepass ",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "alice@gmail.com", got.Email)
	assert.Equal(t, "alicepass", got.Password)
}

func TestValidateRegistration_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload models.UserPayload
	}{
		{"all absent", models.UserPayload{}},
		{"missing password", models.UserPayload{Name: "reda", Email: "reda@gmail.com"}},
		{"missing name", models.UserPayload{Email: "anas@gmail.com", Password: "password123"}},
		{"missing email", models.UserPayload{Name: "osama", Password: "password123"}},
		{"null fields", models.UserPayload{Name: nil, Email: nil, Password: nil}},
		{"non-string types", models.UserPayload{Name: float64(123), Email: float64(456), Password: map[string]any{"obj": true}}},
		{"whitespace only", models.UserPayload{Name: "   ", Email: "   ", Password: "   "}},
		{"boolean name", models.UserPayload{Name: true, Email: "x@y.z", Password: "password123"}},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateRegistration(tt.payload)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestValidateRegistration_InvalidEmail(t *testing.T) {
	tests := []string{
		"invalid-email",
		"no-at-sign.com",
		"two@@signs.com",
		"spaces in@mail.com",
		"missing@tld",
	}

	v := NewUserValidator()
	for _, email := range tests {
		t.Run(email, func(t *testing.T) {
			_, err := v.ValidateRegistration(models.UserPayload{
				Name:     "Aly",
				Email:    email,
				Password: "password123",
			})
			assert.ErrorIs(t, err, ErrInvalidEmailFormat)
		})
	}
}

func TestValidateRegistration_ShortPassword(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidateRegistration(models.UserPayload{
		Name:     "Omar",
		Email:    "omar@gmail.com",
		Password: "123",
	})

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// TestValidateRegistration_PasswordLengthCountsCharacters pins the length
// rule to characters: a five-rune password is short no matter how many
// bytes its UTF-8 encoding takes.
func TestValidateRegistration_PasswordLengthCountsCharacters(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidateRegistration(models.UserPayload{
		Name:     "Omar",
		Email:    "omar@gmail.com",
		Password: "ñññññ",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	got, err := v.ValidateRegistration(models.UserPayload{
		Name:     "Omar",
		Email:    "omar@gmail.com",
		Password: "ññññññ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ññññññ", got.Password)
}

// TestValidateRegistration_MissingTakesPrecedence verifies that the
// required-field check fires before format and length rules.
func TestValidateRegistration_MissingTakesPrecedence(t *testing.T) {
	v := NewUserValidator()

	// password absent AND email malformed: the missing field wins
	_, err := v.ValidateRegistration(models.UserPayload{
		Name:  "x",
		Email: "not-an-email",
	})

	assert.ErrorIs(t, err, ErrMissingFields)
}

// ─────────────────────────────────────────────
// ValidateCredentials
// ─────────────────────────────────────────────

func TestValidateCredentials_Valid(t *testing.T) {
	v := NewUserValidator()

	got, err := v.ValidateCredentials(models.CredentialsPayload{
		Email:    "john_doe@gmail.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.Credentials{Email: "john_doe@gmail.com", Password: "password123"}, got)
}

func TestValidateCredentials_Missing(t *testing.T) {
	tests := []struct {
		name    string
		payload models.CredentialsPayload
	}{
		{"empty body", models.CredentialsPayload{}},
		{"missing email", models.CredentialsPayload{Password: "password123"}},
		{"missing password", models.CredentialsPayload{Email: "john_doe@gmail.com"}},
		{"whitespace only", models.CredentialsPayload{Email: "   ", Password: "   "}},
		{"null values", models.CredentialsPayload{Email: nil, Password: nil}},
		{"non-string values", models.CredentialsPayload{Email: float64(12345), Password: map[string]any{"obj": true}}},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateCredentials(tt.payload)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

// TestValidateCredentials_NoFormatRules verifies that login does not apply
// registration-only format and length rules.
func TestValidateCredentials_NoFormatRules(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidateCredentials(models.CredentialsPayload{
		Email:    "not-an-email",
		Password: "123",
	})

	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// ValidatePatch
// ─────────────────────────────────────────────

func TestValidatePatch_SingleField(t *testing.T) {
	v := NewUserValidator()

	patch, err := v.ValidatePatch(models.UserPayload{Email: "new@gmail.com"})

	require.NoError(t, err)
	require.NotNil(t, patch.Email)
	assert.Equal(t, "new@gmail.com", *patch.Email)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Password)
}

func TestValidatePatch_AllFields(t *testing.T) {
	v := NewUserValidator()

	patch, err := v.ValidatePatch(models.UserPayload{
		Name:     "mock Updated",
		Email:    "mock_updated@gmail.com",
		Password: "newpassword123",
	})

	require.NoError(t, err)
	require.NotNil(t, patch.Name)
	require.NotNil(t, patch.Email)
	require.NotNil(t, patch.Password)
	assert.Equal(t, "mock Updated", *patch.Name)
}

func TestValidatePatch_EmptyBody(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidatePatch(models.UserPayload{})

	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

// Null fields are treated as absent; a patch of only nulls is empty.
func TestValidatePatch_AllNull(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidatePatch(models.UserPayload{Name: nil, Email: nil, Password: nil})

	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestValidatePatch_InvalidTypes(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidatePatch(models.UserPayload{
		Name:     float64(123),
		Email:    float64(456),
		Password: map[string]any{"obj": true},
	})

	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestValidatePatch_PresentFieldsKeepRegistrationRules(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidatePatch(models.UserPayload{Email: "invalid-email"})
	assert.ErrorIs(t, err, ErrInvalidEmailFormat)

	_, err = v.ValidatePatch(models.UserPayload{Password: "123"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = v.ValidatePatch(models.UserPayload{Password: "ñññññ"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
