package feed

import (
	"strings"
	"time"
)

const relaxedLayout = "2006-01-02 15:04:05"

// ParseTimestamp normalizes the feed's heterogeneous date text into a
// timestamp. Blank input and unparsable input both degrade to nil; a parse
// failure is logged at warning level and never surfaces as an error.
func (p *Parser) ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}

	// Relaxed fallback: "2023-12-01T10:30:00+02:00" -> "2023-12-01 10:30:00",
	// parsed as a zone-less local date-time.
	cleaned := strings.Replace(s, "T", " ", 1)
	if i := strings.Index(cleaned, "+"); i >= 0 {
		cleaned = cleaned[:i]
	}
	if t, err := time.ParseInLocation(relaxedLayout, cleaned, time.Local); err == nil {
		return &t
	}

	p.log.Warn("failed to parse timestamp", "value", s)
	return nil
}
