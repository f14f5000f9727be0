// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the HTTP handlers of the
// server and the error mapper of the client.
//
// The server writes one of these strings as the plain-text body of every
// error response; the client matches the body against the same constants to
// recover the business error behind a status code.
package app

const (
	MsgInvalidDataProvided = "invalid data provided"
	MsgInternalServerError = "internal server error"

	// identity
	MsgInvalidLoginPassword    = "invalid login/password"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgLoginAlreadyExists      = "login already exists"

	// notes and folders
	MsgNoteNotFound           = "note not found"
	MsgFolderNotFound         = "folder not found"
	MsgInvalidFolderReference = "folder does not exist"
	MsgEmptyVideoID           = "video id is required"
	MsgEmptyFolderName        = "folder name is required"

	// AI gateway; the wording is shown to the user as is
	MsgAIRateLimited     = "Rate limit exceeded. Please try again later."
	MsgAICreditsDepleted = "AI credits depleted. Please add credits to continue."
	MsgAIGatewayFailed   = "AI gateway error"
	MsgAINotConfigured   = "AI gateway is not configured"
)
