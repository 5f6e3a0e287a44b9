package models

// UserPayload is the raw decoded body of a registration or patch request.
//
// The credential fields are declared as `any` on purpose: the contract
// requires that non-string JSON values (numbers, objects, null) survive
// decoding so the validator can classify them as invalid input instead of
// the decoder failing the whole request. Unknown extra fields are dropped
// by encoding/json during decoding, which makes the "extra fields are
// ignored" behaviour free.
type UserPayload struct {
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}

// CredentialsPayload is the raw decoded body of an authentication request.
type CredentialsPayload struct {
	Email    any `json:"email"`
	Password any `json:"password"`
}

// AdminPayload is the body of an administrative bulk-delete request.
type AdminPayload struct {
	KeyAdmin any `json:"key_admin"`
}

// Credentials is a validated, normalized email/password pair.
type Credentials struct {
	Email    string
	Password string
}
