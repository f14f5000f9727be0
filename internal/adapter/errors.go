package adapter

import "errors"

// Errors mapped from responses of the notes server.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrPaymentRequired     = errors.New("payment required")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Errors of the upstream text-generation API.
var (
	ErrUpstreamRateLimited     = errors.New("upstream rate limit exceeded")
	ErrUpstreamCreditsDepleted = errors.New("upstream credits depleted")
	ErrUpstreamFailed          = errors.New("upstream generation failed")
	ErrEmptyCompletion         = errors.New("upstream returned no completion")
)
