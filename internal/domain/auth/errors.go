package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIPNotAllowed       = errors.New("ip address not approved for this account")
	ErrInvalidToken       = errors.New("invalid or missing token")
)
