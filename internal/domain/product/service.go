package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByExternalID(ctx context.Context, externalID int64) (*Product, error)
	Save(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, externalID int64, updated Product) (*Product, error)
	DeleteByExternalID(ctx context.Context, externalID int64) error
	Search(ctx context.Context, query string) ([]Product, error)
}

// Service implements CRUD and search on top of the repository. The sync
// pipeline bypasses it and talks to the repository directly.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "product_service"),
		now:  time.Now,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Service) FindByExternalID(ctx context.Context, externalID int64) (*Product, error) {
	return s.repo.FindByExternalID(ctx, externalID)
}

func (s *Service) Save(ctx context.Context, p Product) (*Product, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidData)
	}

	id, err := s.repo.Create(ctx, &p)
	if err != nil {
		s.log.Error("failed to save product", "external_id", p.ExternalID, "error", err)
		return nil, fmt.Errorf("save product: %w", err)
	}
	p.ID = id
	return &p, nil
}

// Update overlays the editable fields onto the stored row matched by
// external id. Ids and the created/published timestamps are carried over
// unchanged; the update timestamp is stamped with the current time.
func (s *Service) Update(ctx context.Context, externalID int64, updated Product) (*Product, error) {
	existing, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	merged := ApplyEdit(*existing, updated)
	merged.UpdatedAt = &now

	if err := s.repo.Update(ctx, &merged); err != nil {
		s.log.Error("failed to update product", "external_id", externalID, "error", err)
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &merged, nil
}

func (s *Service) DeleteByExternalID(ctx context.Context, externalID int64) error {
	if err := s.repo.DeleteByExternalID(ctx, externalID); err != nil {
		s.log.Error("failed to delete product", "external_id", externalID, "error", err)
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Search matches the query against title, vendor, product type and tags.
// A blank query returns the full catalog.
func (s *Service) Search(ctx context.Context, query string) ([]Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.FindAll(ctx)
	}

	products, err := s.repo.Search(ctx, query)
	if err != nil {
		s.log.Error("failed to search products", "query", query, "error", err)
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
