package models

import "time"

// Wire DTOs for the pull/push REST protocol. Timestamps travel as RFC 3339
// and the checkpoint in PullResponse.ServerTime is always server-reported,
// never a client clock reading.

// PullResponse is the body of GET /api/{collection}/?since=…
type PullResponse struct {
	Records    []Record  `json:"records"`
	ServerTime time.Time `json:"server_time"`
}

// CreateRequest is the body of POST /api/{collection}/. LocalID doubles as
// the idempotency key: re-sending the same create after a lost response
// returns the already-created record instead of duplicating it.
type CreateRequest struct {
	LocalID string   `json:"local_id"`
	Fields  FieldMap `json:"fields"`
}

// CreateResponse is the 201 body of a successful create.
type CreateResponse struct {
	RemoteID string `json:"remote_id"`
	Version  int64  `json:"version"`
}

// UpdateRequest is the body of PUT /api/{collection}/{remoteID}.
type UpdateRequest struct {
	BaseVersion int64    `json:"base_version"`
	Fields      FieldMap `json:"fields"`
}

// UpdateResponse is the 200 body of a successful update.
type UpdateResponse struct {
	Version int64 `json:"version"`
}

// DeleteRequest is the body of DELETE /api/{collection}/{remoteID}.
type DeleteRequest struct {
	BaseVersion int64 `json:"base_version"`
}

// ConflictResponse is the 409 body returned when the submitted base
// version no longer matches the server's current version.
type ConflictResponse struct {
	CurrentVersion int64  `json:"current_version"`
	CurrentRecord  Record `json:"current_record"`
}

// ValidationResponse is the 422 body carrying server-side validation
// messages. The messages are user-facing and passed through verbatim.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}
