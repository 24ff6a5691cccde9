package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func testParser() *Parser {
	return NewParser(slog.Default())
}

func TestParseTimestamp_ISO(t *testing.T) {
	p := testParser()

	got := p.ParseTimestamp("2023-12-01T10:30:00Z")

	require.NotNil(t, got)
	want, _ := time.Parse(time.RFC3339, "2023-12-01T10:30:00Z")
	assert.True(t, got.Equal(want))
}

func TestParseTimestamp_ISOWithOffset(t *testing.T) {
	p := testParser()

	got := p.ParseTimestamp("2023-12-01T10:30:00+02:00")

	require.NotNil(t, got)
	want, _ := time.Parse(time.RFC3339, "2023-12-01T10:30:00+02:00")
	assert.True(t, got.Equal(want))
}

func TestParseTimestamp_RelaxedFallback(t *testing.T) {
	p := testParser()

	// No seconds-level zone, not valid RFC3339, but salvageable once the
	// separator is replaced and the offset suffix dropped.
	got := p.ParseTimestamp("2023-12-01T10:30:00+bogus")

	require.NotNil(t, got)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 10, got.Hour())
}

func TestParseTimestamp_Absence(t *testing.T) {
	p := testParser()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "garbage", input: "not-a-date"},
		{name: "partial", input: "2023-13-45T99:99:99Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, p.ParseTimestamp(tt.input))
		})
	}
}
