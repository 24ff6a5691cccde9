package feed

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// MaxEntries bounds the number of top-level products processed per pass.
const MaxEntries = 50

// Parser extracts product entries from a raw feed document.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log.With("component", "feed_parser")}
}

type document struct {
	Products []json.RawMessage `json:"products"`
}

type productJSON struct {
	ID          *int64        `json:"id"`
	Title       *string       `json:"title"`
	Handle      *string       `json:"handle"`
	BodyHTML    *string       `json:"body_html"`
	Vendor      *string       `json:"vendor"`
	ProductType *string       `json:"product_type"`
	PublishedAt *string       `json:"published_at"`
	CreatedAt   *string       `json:"created_at"`
	UpdatedAt   *string       `json:"updated_at"`
	Tags        []string      `json:"tags"`
	Variants    []variantJSON `json:"variants"`
	Images      []imageJSON   `json:"images"`
	Options     []optionJSON  `json:"options"`
}

type variantJSON struct {
	ID        *int64          `json:"id"`
	Title     *string         `json:"title"`
	Option1   *string         `json:"option1"`
	Option2   *string         `json:"option2"`
	Option3   *string         `json:"option3"`
	SKU       *string         `json:"sku"`
	Price     json.RawMessage `json:"price"`
	Available *bool           `json:"available"`
	CreatedAt *string         `json:"created_at"`
	UpdatedAt *string         `json:"updated_at"`
}

type imageJSON struct {
	ID        *int64  `json:"id"`
	Src       *string `json:"src"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	Position  *int    `json:"position"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type optionJSON struct {
	Name     *string  `json:"name"`
	Position *int     `json:"position"`
	Values   []string `json:"values"`
}

// Parse walks the fetched document and returns at most MaxEntries product
// entries in document order. A missing "products" field yields an empty
// result with a warning, not an error. Entries that fail extraction carry
// their error so the caller can isolate them without losing the rest.
func (p *Parser) Parse(body []byte) ([]Entry, error) {
	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal feed document: %w", err)
	}

	if doc.Products == nil {
		p.log.Warn("no 'products' field in feed response")
		return nil, nil
	}

	raws := doc.Products
	if len(raws) > MaxEntries {
		raws = raws[:MaxEntries]
	}

	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, p.parseEntry(raw))
	}
	return entries, nil
}

func (p *Parser) parseEntry(raw json.RawMessage) Entry {
	var pj productJSON
	if err := json.Unmarshal(raw, &pj); err != nil {
		return Entry{Err: fmt.Errorf("unmarshal product: %w", err)}
	}

	if pj.ID == nil {
		return Entry{Err: fmt.Errorf("product entry has no id")}
	}
	if pj.Title == nil || strings.TrimSpace(*pj.Title) == "" {
		return Entry{ExternalID: *pj.ID, Err: fmt.Errorf("product %d has no title", *pj.ID)}
	}

	e := Entry{
		ExternalID:  *pj.ID,
		Title:       *pj.Title,
		Handle:      pj.Handle,
		BodyHTML:    pj.BodyHTML,
		Vendor:      pj.Vendor,
		ProductType: pj.ProductType,
		PublishedAt: p.parseOptionalTimestamp(pj.PublishedAt),
		CreatedAt:   p.parseOptionalTimestamp(pj.CreatedAt),
		UpdatedAt:   p.parseOptionalTimestamp(pj.UpdatedAt),
		Tags:        pj.Tags,
	}

	for _, vj := range pj.Variants {
		e.Variants = append(e.Variants, p.parseVariant(vj))
	}
	for _, ij := range pj.Images {
		e.Images = append(e.Images, p.parseImage(ij))
	}
	for _, oj := range pj.Options {
		e.Options = append(e.Options, p.parseOption(oj))
	}

	return e
}

func (p *Parser) parseVariant(vj variantJSON) Variant {
	if vj.ID == nil {
		return Variant{Err: fmt.Errorf("variant entry has no id")}
	}
	v := Variant{
		ExternalID: *vj.ID,
		Title:      vj.Title,
		Option1:    vj.Option1,
		Option2:    vj.Option2,
		Option3:    vj.Option3,
		SKU:        vj.SKU,
		Price:      rawText(vj.Price),
		CreatedAt:  p.parseOptionalTimestamp(vj.CreatedAt),
		UpdatedAt:  p.parseOptionalTimestamp(vj.UpdatedAt),
	}
	if vj.Available != nil {
		v.Available = *vj.Available
	}
	return v
}

func (p *Parser) parseImage(ij imageJSON) Image {
	if ij.ID == nil {
		return Image{Err: fmt.Errorf("image entry has no id")}
	}
	return Image{
		ExternalID: *ij.ID,
		Src:        ij.Src,
		Width:      ij.Width,
		Height:     ij.Height,
		Position:   ij.Position,
		CreatedAt:  p.parseOptionalTimestamp(ij.CreatedAt),
		UpdatedAt:  p.parseOptionalTimestamp(ij.UpdatedAt),
	}
}

func (p *Parser) parseOption(oj optionJSON) Option {
	if oj.Name == nil || *oj.Name == "" {
		return Option{Err: fmt.Errorf("option entry has no name")}
	}
	o := Option{
		Name:   *oj.Name,
		Values: oj.Values,
	}
	if oj.Position != nil {
		o.Position = *oj.Position
	}
	return o
}

func (p *Parser) parseOptionalTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return p.ParseTimestamp(*s)
}

// rawText returns the textual form of a scalar JSON value, tolerating both
// quoted ("19.99") and bare (19.99) price encodings seen in the wild.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
