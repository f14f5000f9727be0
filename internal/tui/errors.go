// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
)

const msgServerUnavailable = "Network is down or the server is unavailable"

var errNoNote = errors.New("no note is open")

// humanizeError turns transport failures into one readable line and strips
// the wrapping chain of service errors down to the first message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid login or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, please log in again"
	}

	return err.Error()
}
