// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/app"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/validators"
)

// mapAdapterError recovers the business error behind a transport error from
// the status sentinel and the response body written by the server. The
// transport error stays in the chain so status checks keep working.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	target := businessError(err, extractBody(err))
	if target == nil {
		return err
	}
	return fmt.Errorf("%w: %w", target, err)
}

func businessError(err error, msg string) error {
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmptyVideoID:
			return validators.ErrEmptyVideoID
		case app.MsgEmptyFolderName:
			return validators.ErrEmptyFolderName
		case app.MsgInvalidFolderReference:
			return store.ErrInvalidFolderReference
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgFolderNotFound:
			return store.ErrFolderNotFound
		case app.MsgNoteNotFound:
			return store.ErrNoteNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrAIRateLimited

	case errors.Is(err, adapter.ErrPaymentRequired):
		return ErrAICreditsDepleted

	case errors.Is(err, adapter.ErrBadGateway):
		return ErrAIGatewayFailed

	case errors.Is(err, adapter.ErrServiceUnavailable):
		if msg == app.MsgAINotConfigured {
			return ErrAINotConfigured
		}
	}

	return nil
}

// extractBody returns the body part of "<status sentinel>: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
