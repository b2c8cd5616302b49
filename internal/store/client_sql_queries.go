// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronin

package store

const (
	upsertLocalRecord = `
		INSERT INTO records (
			local_id,
			remote_id,
			collection,
			fields,
			version,
			synced,
			deleted,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (local_id) DO UPDATE SET
			remote_id  = excluded.remote_id,
			collection = excluded.collection,
			fields     = excluded.fields,
			version    = excluded.version,
			synced     = excluded.synced,
			deleted    = excluded.deleted,
			updated_at = excluded.updated_at;`

	getLocalRecord = `
		SELECT local_id, remote_id, collection, fields, version, synced, deleted, created_at, updated_at
		FROM records
		WHERE collection = $1 AND local_id = $2;`

	getLocalRecordByRemoteID = `
		SELECT local_id, remote_id, collection, fields, version, synced, deleted, created_at, updated_at
		FROM records
		WHERE collection = $1 AND remote_id = $2;`

	getAllLocalRecords = `
		SELECT local_id, remote_id, collection, fields, version, synced, deleted, created_at, updated_at
		FROM records
		WHERE collection = $1 AND deleted = 0
		ORDER BY created_at ASC;`

	getUnsyncedLocalRecords = `
		SELECT local_id, remote_id, collection, fields, version, synced, deleted, created_at, updated_at
		FROM records
		WHERE collection = $1 AND synced = 0
		ORDER BY created_at ASC;`

	markLocalRecordSynced = `
		UPDATE records SET
			remote_id  = $1,
			version    = $2,
			synced     = 1
		WHERE collection = $3 AND local_id = $4;`

	removeLocalRecord = `
		DELETE FROM records
		WHERE collection = $1 AND local_id = $2;`

	insertQueueEntry = `
		INSERT INTO mutation_queue (
			collection,
			local_id,
			op,
			fields,
			base,
			base_version,
			enqueued_at,
			retry_count,
			rejected
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	updateQueueEntry = `
		UPDATE mutation_queue SET
			op           = $1,
			fields       = $2,
			base         = $3,
			base_version = $4,
			retry_count  = $5,
			rejected     = $6
		WHERE collection = $7 AND local_id = $8;`

	getQueueEntry = `
		SELECT collection, local_id, op, fields, base, base_version, enqueued_at, retry_count, rejected
		FROM mutation_queue
		WHERE collection = $1 AND local_id = $2;`

	getAllQueueEntries = `
		SELECT collection, local_id, op, fields, base, base_version, enqueued_at, retry_count, rejected
		FROM mutation_queue
		ORDER BY enqueued_at ASC, rowid ASC;`

	getQueueEntriesForCollection = `
		SELECT collection, local_id, op, fields, base, base_version, enqueued_at, retry_count, rejected
		FROM mutation_queue
		WHERE collection = $1
		ORDER BY enqueued_at ASC, rowid ASC;`

	markQueueEntryRejected = `
		UPDATE mutation_queue
		SET rejected = 1
		WHERE collection = $1 AND local_id = $2;`

	removeQueueEntry = `
		DELETE FROM mutation_queue
		WHERE collection = $1 AND local_id = $2;`

	incrementQueueRetry = `
		UPDATE mutation_queue
		SET retry_count = retry_count + 1
		WHERE collection = $1 AND local_id = $2;`

	countQueueEntries = `
		SELECT COUNT(*) FROM mutation_queue;`

	getCheckpoint = `
		SELECT pulled_at
		FROM checkpoints
		WHERE collection = $1;`

	upsertCheckpoint = `
		INSERT INTO checkpoints (collection, pulled_at)
		VALUES ($1, $2)
		ON CONFLICT (collection) DO UPDATE SET pulled_at = excluded.pulled_at;`

	getDevicePINHash = `
		SELECT pin_hash FROM device WHERE id = 1;`

	upsertDevicePINHash = `
		INSERT INTO device (id, pin_hash)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET pin_hash = excluded.pin_hash;`
)
