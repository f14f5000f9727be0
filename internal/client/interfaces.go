// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-video-notes/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow blocks until the user logs in or registers.
	LoginFlow(ctx context.Context) (models.LocalSession, error)

	// MainLoop runs the notes screens and reports whether the user logged out.
	MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error)
}
