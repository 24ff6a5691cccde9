package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog product. ID is the surrogate key assigned by the
// store on first insert; ExternalID is the stable key assigned by the source
// feed and is the only key the feed knows about. Optional feed fields are
// pointers: absence is a valid state, not an error.
type Product struct {
	ID          int        `json:"id"`
	ExternalID  int64      `json:"external_id"`
	Title       string     `json:"title"`
	Handle      *string    `json:"handle,omitempty"`
	BodyHTML    *string    `json:"body_html,omitempty"`
	Vendor      *string    `json:"vendor,omitempty"`
	ProductType *string    `json:"product_type,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Tags        []string   `json:"tags"`

	Variants []Variant `json:"variants,omitempty"`
	Images   []Image   `json:"images,omitempty"`
	Options  []Option  `json:"options,omitempty"`
}

// Variant is owned by exactly one product via ProductID and upserted by its
// own ExternalID.
type Variant struct {
	ID         int             `json:"id"`
	ExternalID int64           `json:"external_id"`
	ProductID  int             `json:"product_id"`
	Title      *string         `json:"title,omitempty"`
	Option1    *string         `json:"option1,omitempty"`
	Option2    *string         `json:"option2,omitempty"`
	Option3    *string         `json:"option3,omitempty"`
	SKU        *string         `json:"sku,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Available  bool            `json:"available"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

// Image is upserted by its own ExternalID.
type Image struct {
	ID         int        `json:"id"`
	ExternalID int64      `json:"external_id"`
	ProductID  int        `json:"product_id"`
	Src        *string    `json:"src,omitempty"`
	Width      *int       `json:"width,omitempty"`
	Height     *int       `json:"height,omitempty"`
	Position   *int       `json:"position,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Option has no external id; its natural key is (ProductID, Name). Values is
// the option's value list joined with commas.
type Option struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Position  int     `json:"position"`
	Values    *string `json:"values,omitempty"`
}
