// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither
// SERVER_ADDRESS nor SERVER_GRPC_ADDRESS.
var errNoHandlersAreCreated = errors.New("handler: no transport address configured")
