package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reconcile produces the record to persist for an incoming feed product.
// When an existing row is present the incoming fields win, except the
// surrogate id and external id, which never move. When absent the incoming
// record is returned with a zero surrogate id for the store to assign.
func Reconcile(existing *Product, incoming Product) Product {
	if existing == nil {
		incoming.ID = 0
		return incoming
	}
	merged := incoming
	merged.ID = existing.ID
	merged.ExternalID = existing.ExternalID
	return merged
}

// ApplyEdit overlays a manual edit onto the stored row. Only the editable
// fields move; ids, timestamps and anything else feed-owned are carried from
// the existing record. Feed sync overlays everything instead (Reconcile).
func ApplyEdit(existing Product, incoming Product) Product {
	existing.Title = incoming.Title
	existing.Handle = incoming.Handle
	existing.BodyHTML = incoming.BodyHTML
	existing.Vendor = incoming.Vendor
	existing.ProductType = incoming.ProductType
	existing.Tags = incoming.Tags
	return existing
}

// ParsePrice converts feed price text to a decimal. Missing or unparsable
// input degrades to zero, never an error.
func ParsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// JoinValues flattens an option's value list into the stored comma-separated
// form. Lossy if a value contains a comma.
func JoinValues(values []string) string {
	return strings.Join(values, ",")
}
