package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMap_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b FieldMap
		want bool
	}{
		{name: "both empty", a: FieldMap{}, b: FieldMap{}, want: true},
		{name: "nil vs empty", a: nil, b: FieldMap{}, want: true},
		{
			name: "identical",
			a:    FieldMap{FieldCoveragePercent: "80", FieldPayer: "Acme Health"},
			b:    FieldMap{FieldCoveragePercent: "80", FieldPayer: "Acme Health"},
			want: true,
		},
		{
			name: "different value",
			a:    FieldMap{FieldCoveragePercent: "80"},
			b:    FieldMap{FieldCoveragePercent: "95"},
			want: false,
		},
		{
			name: "extra key",
			a:    FieldMap{FieldCoveragePercent: "80"},
			b:    FieldMap{FieldCoveragePercent: "80", FieldPayer: "Acme Health"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestFieldMap_DiffKeys(t *testing.T) {
	a := FieldMap{
		FieldCoveragePercent: "95",
		FieldPayer:           "Acme Health",
		FieldMemberID:        "M-1001",
	}
	b := FieldMap{
		FieldCoveragePercent: "70",
		FieldPayer:           "Acme Health",
		FieldPlanName:        "Gold PPO",
	}

	got := a.DiffKeys(b)

	// Sorted, covers both value changes and one-sided fields.
	assert.Equal(t, []string{FieldCoveragePercent, FieldMemberID, FieldPlanName}, got)
}

func TestFieldMap_Clone_IsIndependent(t *testing.T) {
	orig := FieldMap{FieldCoveragePercent: "80"}
	clone := orig.Clone()

	clone[FieldCoveragePercent] = "95"

	assert.Equal(t, "80", orig[FieldCoveragePercent])
	assert.Equal(t, "95", clone[FieldCoveragePercent])
}

func TestFieldMap_Clone_NilBecomesEmpty(t *testing.T) {
	var orig FieldMap

	clone := orig.Clone()

	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}
