package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrIncorrectCredentials = errors.New("incorrect email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidAdminKey = errors.New("invalid admin key")
)
