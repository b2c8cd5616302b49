package service

import (
	"testing"

	"github.com/mvoronin/clinic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictDetector_UpdateWithDifferentServerValues_Genuine(t *testing.T) {
	d := NewConflictDetector()

	entry := models.MutationEntry{
		Collection:  models.CollectionInsuranceCards,
		LocalID:     "local-1",
		Op:          models.OpUpdate,
		Fields:      models.FieldMap{models.FieldCoveragePercent: "95", models.FieldPayer: "Granite Health"},
		Base:        models.FieldMap{models.FieldCoveragePercent: "80", models.FieldPayer: "Granite Health"},
		BaseVersion: 3,
	}
	server := models.Record{
		LocalID:    "local-1",
		RemoteID:   "remote-1",
		Collection: models.CollectionInsuranceCards,
		Fields:     models.FieldMap{models.FieldCoveragePercent: "70", models.FieldPayer: "Granite Health"},
		Version:    4,
	}

	conflict, genuine := d.Detect(entry, server)
	require.True(t, genuine)

	assert.Equal(t, models.CollectionInsuranceCards, conflict.Collection)
	assert.Equal(t, "local-1", conflict.LocalID)
	assert.Equal(t, entry.Fields, conflict.Local)
	assert.Equal(t, server, conflict.Server)

	// Only the coverage differs, so the dialog shows a single row.
	require.Len(t, conflict.Fields, 1)
	assert.Equal(t, "Coverage %", conflict.Fields[0].Label)
	assert.Equal(t, "95", conflict.Fields[0].Local)
	assert.Equal(t, "70", conflict.Fields[0].Server)
}

func TestConflictDetector_ServerAlreadyHoldsLocalValues_NotGenuine(t *testing.T) {
	d := NewConflictDetector()

	fields := models.FieldMap{models.FieldCoveragePercent: "95", models.FieldPayer: "Granite Health"}
	entry := models.MutationEntry{
		Collection:  models.CollectionInsuranceCards,
		LocalID:     "local-1",
		Op:          models.OpUpdate,
		Fields:      fields,
		BaseVersion: 3,
	}
	server := models.Record{
		LocalID: "local-1",
		Fields:  fields.Clone(),
		Version: 4,
	}

	_, genuine := d.Detect(entry, server)
	assert.False(t, genuine, "same values on both sides is convergence, not conflict")
}

func TestConflictDetector_DeleteAgainstServerTombstone_NotGenuine(t *testing.T) {
	d := NewConflictDetector()

	entry := models.MutationEntry{
		Collection:  models.CollectionPayments,
		LocalID:     "local-2",
		Op:          models.OpDelete,
		Base:        models.FieldMap{models.FieldAmountCents: "1500"},
		BaseVersion: 2,
	}
	server := models.Record{
		LocalID: "local-2",
		Deleted: true,
		Version: 3,
	}

	_, genuine := d.Detect(entry, server)
	assert.False(t, genuine, "both sides want the record gone")
}

func TestConflictDetector_DeleteAgainstServerEdit_Genuine(t *testing.T) {
	d := NewConflictDetector()

	entry := models.MutationEntry{
		Collection:  models.CollectionPayments,
		LocalID:     "local-2",
		Op:          models.OpDelete,
		Base:        models.FieldMap{models.FieldAmountCents: "1500", models.FieldMethod: "cash"},
		BaseVersion: 2,
	}
	server := models.Record{
		LocalID: "local-2",
		Fields:  models.FieldMap{models.FieldAmountCents: "2000", models.FieldMethod: "cash"},
		Version: 3,
	}

	conflict, genuine := d.Detect(entry, server)
	require.True(t, genuine)

	// The local side of a delete conflict is the record as last seen, not
	// the (empty) mutation payload.
	assert.Equal(t, entry.Base, conflict.Local)
}

func TestConflictDetector_EditAgainstServerTombstone_Genuine(t *testing.T) {
	d := NewConflictDetector()

	entry := models.MutationEntry{
		Collection:  models.CollectionOutcomeMeasures,
		LocalID:     "local-3",
		Op:          models.OpUpdate,
		Fields:      models.FieldMap{models.FieldScore: "42"},
		Base:        models.FieldMap{models.FieldScore: "40"},
		BaseVersion: 1,
	}
	server := models.Record{
		LocalID: "local-3",
		Deleted: true,
		Version: 2,
	}

	_, genuine := d.Detect(entry, server)
	assert.True(t, genuine, "editing a record someone else deleted needs a decision")
}
