package service

import "errors"

var (
	// ErrOffline is returned when a sync run is refused because the server
	// health probe failed.
	ErrOffline = errors.New("server is unreachable")

	// ErrSyncInProgress is returned when a sync for the same collection is
	// already running.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNoPINConfigured is returned by UnlockOffline when the device has no
	// stored PIN yet.
	ErrNoPINConfigured = errors.New("no offline pin configured on this device")

	// ErrNotSyncedYet is returned when a queued mutation references a record
	// that has no server identity and cannot be pushed as an update or
	// delete.
	ErrNotSyncedYet = errors.New("record has not been synced to the server yet")
)
