package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPatterns(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantContains string
		wantPrefix   string
	}{
		{"lower cases the query", "Shirt", "%shirt%", "shirt%"},
		{"already lower", "seamless", "%seamless%", "seamless%"},
		{"multi word", "Tank Top", "%tank top%", "tank top%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contains, prefix := searchPatterns(tt.query)
			assert.Equal(t, tt.wantContains, contains)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

// Pins the ranked ordering the search query issues: title-prefix matches
// first, then vendor-prefix, then type-prefix, then everything else, ties
// broken by title ascending.
func TestSearchQuery_Ranking(t *testing.T) {
	titleRank := strings.Index(searchQuery, "WHEN LOWER(title) LIKE $2 THEN 1")
	vendorRank := strings.Index(searchQuery, "WHEN LOWER(vendor) LIKE $2 THEN 2")
	typeRank := strings.Index(searchQuery, "WHEN LOWER(product_type) LIKE $2 THEN 3")
	restRank := strings.Index(searchQuery, "ELSE 4")
	tieBreak := strings.Index(searchQuery, "title ASC")

	require.NotEqual(t, -1, titleRank)
	require.NotEqual(t, -1, vendorRank)
	require.NotEqual(t, -1, typeRank)
	require.NotEqual(t, -1, restRank)
	require.NotEqual(t, -1, tieBreak)

	assert.Less(t, titleRank, vendorRank)
	assert.Less(t, vendorRank, typeRank)
	assert.Less(t, typeRank, restRank)
	assert.Less(t, restRank, tieBreak, "title is the tie break, after the rank")
}

func TestSearchQuery_MatchesAllColumnsCaseInsensitively(t *testing.T) {
	// The substring pattern ($1) must hit title, vendor, product type and
	// every tag, all case-folded.
	assert.Contains(t, searchQuery, "LOWER(title) LIKE $1")
	assert.Contains(t, searchQuery, "LOWER(vendor) LIKE $1")
	assert.Contains(t, searchQuery, "LOWER(product_type) LIKE $1")
	assert.Contains(t, searchQuery, "unnest(tags)")
	assert.Contains(t, searchQuery, "LOWER(tag) LIKE $1")
}
