// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("server: neither an HTTP nor a gRPC address is configured")
	errNothingToRun        = errors.New("server: nothing to run")
)
