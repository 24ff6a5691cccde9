package feed

import (
	"time"
)

// Entry is one top-level product extracted from the feed document. When
// required fields are missing the entry carries Err instead of data; the
// sync pass records it as an item failure and moves on.
type Entry struct {
	ExternalID  int64
	Title       string
	Handle      *string
	BodyHTML    *string
	Vendor      *string
	ProductType *string
	PublishedAt *time.Time
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	Tags        []string

	Variants []Variant
	Images   []Image
	Options  []Option

	Err error
}

// Variant is a nested variant entry. Price is kept as raw feed text; the
// upsert rules own the numeric conversion.
type Variant struct {
	ExternalID int64
	Title      *string
	Option1    *string
	Option2    *string
	Option3    *string
	SKU        *string
	Price      string
	Available  bool
	CreatedAt  *time.Time
	UpdatedAt  *time.Time

	Err error
}

type Image struct {
	ExternalID int64
	Src        *string
	Width      *int
	Height     *int
	Position   *int
	CreatedAt  *time.Time
	UpdatedAt  *time.Time

	Err error
}

type Option struct {
	Name     string
	Position int
	Values   []string

	Err error
}
