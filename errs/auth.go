package errs

import (
	"errors"
	"net/http"
)

// Authentication & delivery errors
var (
	ErrMissingToken   = errors.New("missing authentication token")
	ErrInvalidToken   = errors.New("invalid authentication token")
	ErrExpiredToken   = errors.New("authentication token expired")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrCodeExpired    = errors.New("reset code expired or already used")
	ErrEmailDelivery  = errors.New("email delivery failed")
)

func NewMissingTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrMissingToken}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidToken}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrExpiredToken}
}

func NewBadCredentialsError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrBadCredentials}
}

func NewCodeExpiredError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrCodeExpired}
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken) || errors.Is(err, ErrMissingToken)
}
