package identity

import "errors"

var (
	ErrInvalidInput       = errors.New("identity: missing required field")
	ErrAlreadyExists      = errors.New("identity: account already exists")
	ErrInvalidData        = errors.New("identity: invalid account data")
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrMissingToken       = errors.New("identity: missing bearer token")
	ErrInvalidToken       = errors.New("identity: invalid token")
	ErrExpiredToken       = errors.New("identity: token expired")
	ErrNotFound           = errors.New("identity: not found")
	ErrUnauthorized       = errors.New("identity: unauthorized")
	ErrHashing            = errors.New("identity: hash password")
	ErrSigning            = errors.New("identity: sign token")
)
