// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

// Package adapter provides transport-layer abstractions for communicating
// with the clinic-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engines from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrVersionConflict] for 409, [ErrValidation] for
// 422, [ErrUnavailable] for transport failures).
package adapter

import (
	"context"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the central
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates an account on the server. On success it stores the
	// returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the token with the
	// account identifier extracted from its subject claim.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Ping probes the server's health endpoint. The network status monitor
	// calls it immediately before a sync run; any error means the run is
	// refused as offline.
	Ping(ctx context.Context) error

	// Pull fetches all records of the collection modified at or after
	// since, together with the server's clock reading to be used as the
	// next checkpoint.
	Pull(ctx context.Context, collection models.Collection, since time.Time) (models.PullResponse, error)

	// Create pushes a locally created record. The request's LocalID acts
	// as an idempotency key: re-sending the same create returns the
	// already-assigned remote ID and version instead of duplicating.
	// Returns [ErrVersionConflict] (as a *ConflictError) or
	// [ErrValidation] (as a *ValidationError) wrapped errors when the
	// server rejects the payload.
	Create(ctx context.Context, collection models.Collection, req models.CreateRequest) (models.CreateResponse, error)

	// Update pushes a local edit with its base version for optimistic
	// locking. Error mapping as for Create.
	Update(ctx context.Context, collection models.Collection, remoteID string, req models.UpdateRequest) (models.UpdateResponse, error)

	// Delete soft-deletes a record on the server, guarded by baseVersion.
	Delete(ctx context.Context, collection models.Collection, remoteID string, baseVersion int64) error
}
