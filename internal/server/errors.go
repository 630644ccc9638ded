// Package server provides the HTTP REST API for the stylesense service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/stylesense/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates no account is stored for an email
type ErrUserNotFound struct {
	Email string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.Email)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
	Err     error
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ErrValidation) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		noUser      *ErrUserNotFound
		invalid     *ErrValidation
		noCategory  *types.CategoryNotFoundError
		noReference *types.ReferenceNotFoundError
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &noUser), errors.As(err, &noCategory):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &noReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
