package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestReconcile_KeepsSurrogateAndExternalID(t *testing.T) {
	existing := &Product{
		ID:         7,
		ExternalID: 1001,
		Title:      "Old title",
		Vendor:     strPtr("Acme"),
	}
	incoming := Product{
		ExternalID: 1001,
		Title:      "New title",
	}

	merged := Reconcile(existing, incoming)

	assert.Equal(t, 7, merged.ID)
	assert.Equal(t, int64(1001), merged.ExternalID)
	assert.Equal(t, "New title", merged.Title)
	assert.Nil(t, merged.Vendor, "incoming fields overlay everything, presence included")
}

func TestReconcile_InsertWhenAbsent(t *testing.T) {
	incoming := Product{
		ID:         42, // must not survive, the store assigns surrogate ids
		ExternalID: 2002,
		Title:      "Fresh",
	}

	merged := Reconcile(nil, incoming)

	assert.Zero(t, merged.ID)
	assert.Equal(t, int64(2002), merged.ExternalID)
	assert.Equal(t, "Fresh", merged.Title)
}

func TestReconcile_Idempotent(t *testing.T) {
	existing := &Product{ID: 3, ExternalID: 500, Title: "A"}
	incoming := Product{ExternalID: 500, Title: "B", Tags: []string{"x", "y"}}

	first := Reconcile(existing, incoming)
	second := Reconcile(&first, incoming)

	assert.Equal(t, first, second)
}

func TestApplyEdit_OnlyEditableFieldsMove(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	published := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	existing := Product{
		ID:          7,
		ExternalID:  1001,
		Title:       "Old title",
		Vendor:      strPtr("Acme"),
		CreatedAt:   &created,
		PublishedAt: &published,
		Variants:    []Variant{{ExternalID: 5001}},
	}
	incoming := Product{
		Title: "New title",
		Tags:  []string{"sale"},
	}

	merged := ApplyEdit(existing, incoming)

	assert.Equal(t, 7, merged.ID)
	assert.Equal(t, int64(1001), merged.ExternalID)
	assert.Equal(t, "New title", merged.Title)
	assert.Nil(t, merged.Vendor)
	assert.Equal(t, []string{"sale"}, merged.Tags)
	assert.Equal(t, &created, merged.CreatedAt)
	assert.Equal(t, &published, merged.PublishedAt)
	assert.Equal(t, existing.Variants, merged.Variants)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{name: "plain price", input: "19.99", want: decimal.RequireFromString("19.99")},
		{name: "integer price", input: "120", want: decimal.NewFromInt(120)},
		{name: "padded", input: " 5.50 ", want: decimal.RequireFromString("5.50")},
		{name: "missing", input: "", want: decimal.Zero},
		{name: "unparsable", input: "n/a", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.input)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestJoinValues(t *testing.T) {
	assert.Equal(t, "S,M,L", JoinValues([]string{"S", "M", "L"}))
	assert.Equal(t, "", JoinValues(nil))
	assert.Equal(t, "a,b,c", JoinValues([]string{"a,b", "c"}), "comma in a value is lossy, accepted")
}
