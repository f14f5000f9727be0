package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrHashingPassword         = errors.New("error hashing password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)

// AI gateway errors. Each one maps to its own HTTP status.
var (
	ErrAIRateLimited     = errors.New("rate limit exceeded, please try again later")
	ErrAICreditsDepleted = errors.New("AI credits depleted, please add credits to continue")
	ErrAIGatewayFailed   = errors.New("AI gateway error")
	ErrAINotConfigured   = errors.New("AI gateway is not configured")
)

// Client-side errors.
var (
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrNoActiveNote        = errors.New("no active note")
	ErrEmptyNoteContent    = errors.New("note has no content to study")
	ErrMalformedAIResponse = errors.New("malformed AI response")
	ErrNoOpenNote          = errors.New("no note is open in the editor")
	ErrDuplicateTag        = errors.New("tag already exists")
)
