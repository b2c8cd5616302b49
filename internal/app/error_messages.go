// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

// Package app contains shared application-layer constants used across the
// clinic-sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUnknownCollection is returned when the {collection} path segment
	// names a collection the server does not manage.
	MsgUnknownCollection = "unknown collection"

	// MsgRecordNotFound is returned when a read, update, or delete operation
	// targets a record that does not exist for the current user.
	MsgRecordNotFound = "record not found"

	// MsgInvalidSinceParameter is returned when the since query parameter of
	// a pull request is not a valid RFC 3339 timestamp.
	MsgInvalidSinceParameter = "invalid since parameter"

	// MsgVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client no longer matches the server's
	// current version. The client should pull before retrying.
	MsgVersionConflict = "version conflict, please sync"

	// MsgStorageUnavailable is returned when the storage layer reports a
	// transient failure and the client may retry the request later.
	MsgStorageUnavailable = "storage temporarily unavailable"
)
