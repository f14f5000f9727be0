package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "connection refused", err: errors.New(`Post "http://localhost:8080/api/user/login": dial tcp [::1]:8080: connect: connection refused`), want: msgServerUnavailable},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: msgServerUnavailable},
		{name: "wrong password", err: fmt.Errorf("login: %w", service.ErrWrongPassword), want: "Invalid login or password"},
		{name: "login taken", err: fmt.Errorf("register: %w", store.ErrLoginAlreadyExists), want: "This login is already taken"},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: "Session expired, please log in again"},
		{name: "other", err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
