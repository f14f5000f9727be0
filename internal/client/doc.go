// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal notes client: it restores or establishes
// a login session, keeps the note cache refreshed in the background while the
// notes UI is open, and returns to the login flow after a logout.
package client
