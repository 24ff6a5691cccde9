package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalogsync/internal/domain/product"
	"catalogsync/internal/feed"

	"golang.org/x/exp/slog"
)

// Fetcher retrieves the raw feed document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type Servicer interface {
	Run(ctx context.Context) (*Report, error)
}

// Service drives one full synchronization pass: fetch, parse, then a strictly
// sequential per-product reconcile-and-persist with the cascade to variants,
// images and options. Transport and parse failures abort the pass; everything
// below that is isolated per item.
type Service struct {
	fetcher Fetcher
	parser  *feed.Parser
	repo    product.Repository
	log     *slog.Logger
}

func NewService(fetcher Fetcher, parser *feed.Parser, repo product.Repository, log *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		parser:  parser,
		repo:    repo,
		log:     log.With("component", "sync_service"),
	}
}

// Run executes one pass. The returned error is pass-level only (fetch or
// parse); item failures are collected in the report.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{StartedAt: time.Now()}

	s.log.Info("fetching products from feed")
	body, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if len(body) == 0 {
		// Soft failure: the pass ends with no items processed.
		s.log.Warn("empty response from feed")
		report.FinishedAt = time.Now()
		return report, nil
	}

	entries, err := s.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	report.Fetched = len(entries)

	for _, entry := range entries {
		s.upsertEntry(ctx, entry, report)
	}

	report.FinishedAt = time.Now()
	s.log.Info("product sync completed",
		"fetched", report.Fetched,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)
	return report, nil
}

func (s *Service) upsertEntry(ctx context.Context, entry feed.Entry, report *Report) {
	if entry.Err != nil {
		report.add(s.failed(KindProduct, entry.ExternalID, "", entry.Err))
		return
	}

	var productID int
	res := s.attempt(KindProduct, entry.ExternalID, "", func() error {
		var err error
		productID, err = s.upsertProduct(ctx, entry)
		return err
	})
	report.add(res)
	if res.Failed() {
		// Children reference the surrogate id; without it there is nothing
		// to cascade. Siblings are unaffected.
		return
	}

	for _, v := range entry.Variants {
		report.add(s.upsertVariant(ctx, v, productID))
	}
	for _, img := range entry.Images {
		report.add(s.upsertImage(ctx, img, productID))
	}
	for _, opt := range entry.Options {
		report.add(s.upsertOption(ctx, opt, productID))
	}
}

func (s *Service) upsertProduct(ctx context.Context, entry feed.Entry) (int, error) {
	existing, err := s.repo.FindByExternalID(ctx, entry.ExternalID)
	if err != nil && !errors.Is(err, product.ErrNotFound) {
		return 0, fmt.Errorf("find product: %w", err)
	}

	merged := product.Reconcile(existing, entryToProduct(entry))

	if existing != nil {
		if err := s.repo.Update(ctx, &merged); err != nil {
			return 0, fmt.Errorf("update product: %w", err)
		}
		return merged.ID, nil
	}

	id, err := s.repo.Create(ctx, &merged)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (s *Service) upsertVariant(ctx context.Context, v feed.Variant, productID int) ItemResult {
	if v.Err != nil {
		return s.failed(KindVariant, v.ExternalID, "", v.Err)
	}
	return s.attempt(KindVariant, v.ExternalID, "", func() error {
		model := product.Variant{
			ExternalID: v.ExternalID,
			ProductID:  productID,
			Title:      v.Title,
			Option1:    v.Option1,
			Option2:    v.Option2,
			Option3:    v.Option3,
			SKU:        v.SKU,
			Price:      product.ParsePrice(v.Price),
			Available:  v.Available,
			CreatedAt:  v.CreatedAt,
			UpdatedAt:  v.UpdatedAt,
		}
		return s.repo.UpsertVariant(ctx, &model)
	})
}

func (s *Service) upsertImage(ctx context.Context, img feed.Image, productID int) ItemResult {
	if img.Err != nil {
		return s.failed(KindImage, img.ExternalID, "", img.Err)
	}
	return s.attempt(KindImage, img.ExternalID, "", func() error {
		model := product.Image{
			ExternalID: img.ExternalID,
			ProductID:  productID,
			Src:        img.Src,
			Width:      img.Width,
			Height:     img.Height,
			Position:   img.Position,
			CreatedAt:  img.CreatedAt,
			UpdatedAt:  img.UpdatedAt,
		}
		return s.repo.UpsertImage(ctx, &model)
	})
}

func (s *Service) upsertOption(ctx context.Context, opt feed.Option, productID int) ItemResult {
	if opt.Err != nil {
		return s.failed(KindOption, 0, opt.Name, opt.Err)
	}
	return s.attempt(KindOption, 0, opt.Name, func() error {
		values := product.JoinValues(opt.Values)
		model := product.Option{
			ProductID: productID,
			Name:      opt.Name,
			Position:  opt.Position,
			Values:    &values,
		}
		return s.repo.UpsertOption(ctx, &model)
	})
}

// attempt runs one item's processing and converts its outcome into an
// ItemResult. Every item in a pass goes through here, never ad hoc handling
// at the call sites.
func (s *Service) attempt(kind ItemKind, externalID int64, name string, fn func() error) ItemResult {
	if err := fn(); err != nil {
		return s.failed(kind, externalID, name, err)
	}
	return ItemResult{Kind: kind, ExternalID: externalID, Name: name}
}

func (s *Service) failed(kind ItemKind, externalID int64, name string, err error) ItemResult {
	s.log.Error("failed to upsert "+string(kind),
		"external_id", externalID,
		"name", name,
		"error", err,
	)
	return ItemResult{Kind: kind, ExternalID: externalID, Name: name, Error: err.Error(), err: err}
}

func entryToProduct(entry feed.Entry) product.Product {
	return product.Product{
		ExternalID:  entry.ExternalID,
		Title:       entry.Title,
		Handle:      entry.Handle,
		BodyHTML:    entry.BodyHTML,
		Vendor:      entry.Vendor,
		ProductType: entry.ProductType,
		PublishedAt: entry.PublishedAt,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		Tags:        entry.Tags,
	}
}
