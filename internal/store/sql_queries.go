// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

package store

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createRecord = `INSERT INTO records (
			remote_id,
			user_id,
			collection,
			local_id,
			fields,
			version,
			deleted
		) VALUES ($1, $2, $3, $4, $5, 1, false)
		RETURNING remote_id, local_id, collection, fields, version, deleted, created_at, updated_at;`

	getRecordByRemoteID = `SELECT remote_id, local_id, collection, fields, version, deleted, created_at, updated_at
		FROM records
		WHERE user_id = $1 AND collection = $2 AND remote_id = $3;`

	getRecordByLocalID = `SELECT remote_id, local_id, collection, fields, version, deleted, created_at, updated_at
		FROM records
		WHERE user_id = $1 AND collection = $2 AND local_id = $3;`
)

// recordColumns is the canonical column list scanned into models.Record.
// Keep in sync with scanRecord.
var recordColumns = []string{
	"remote_id", "local_id", "collection", "fields",
	"version", "deleted", "created_at", "updated_at",
}
