package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalogsync/internal/domain/product"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ProductRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProductRepository(storage *Storage, log *slog.Logger) *ProductRepository {
	return &ProductRepository{
		pool: storage.Pool(),
		log:  log.With("component", "product_repository"),
	}
}

const productColumns = `id, external_id, title, handle, body_html, vendor, product_type,
	       published_at, created_at, updated_at, tags`

func (r *ProductRepository) FindByExternalID(ctx context.Context, externalID int64) (*product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE external_id = $1`

	row := r.pool.QueryRow(ctx, query, externalID)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		r.log.Error("failed to find product", "external_id", externalID, "error", err)
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (int, error) {
	const query = `
		INSERT INTO products (external_id, title, handle, body_html, vendor, product_type,
		                      published_at, created_at, updated_at, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		p.ExternalID, p.Title, p.Handle, p.BodyHTML, p.Vendor, p.ProductType,
		p.PublishedAt, p.CreatedAt, p.UpdatedAt, tagsOrEmpty(p.Tags),
	).Scan(&p.ID)

	if err != nil {
		r.log.Error("failed to create product", "external_id", p.ExternalID, "error", err)
		return 0, fmt.Errorf("create product: %w", err)
	}
	return p.ID, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	const query = `
		UPDATE products
		SET title = $1, handle = $2, body_html = $3, vendor = $4, product_type = $5,
		    published_at = $6, created_at = $7, updated_at = $8, tags = $9
		WHERE external_id = $10`

	_, err := r.pool.Exec(ctx, query,
		p.Title, p.Handle, p.BodyHTML, p.Vendor, p.ProductType,
		p.PublishedAt, p.CreatedAt, p.UpdatedAt, tagsOrEmpty(p.Tags),
		p.ExternalID,
	)
	if err != nil {
		r.log.Error("failed to update product", "external_id", p.ExternalID, "error", err)
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepository) DeleteByExternalID(ctx context.Context, externalID int64) error {
	const query = `DELETE FROM products WHERE external_id = $1`

	if _, err := r.pool.Exec(ctx, query, externalID); err != nil {
		r.log.Error("failed to delete product", "external_id", externalID, "error", err)
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// searchQuery ranks title-prefix matches before vendor-prefix, then
// type-prefix, then everything else, ties broken by title. $1 is the
// substring pattern, $2 the prefix pattern.
const searchQuery = `
	SELECT ` + productColumns + `
	FROM products
	WHERE LOWER(title) LIKE $1
	   OR LOWER(vendor) LIKE $1
	   OR LOWER(product_type) LIKE $1
	   OR EXISTS (
	       SELECT 1 FROM unnest(tags) AS tag
	       WHERE LOWER(tag) LIKE $1
	   )
	ORDER BY
	    CASE
	        WHEN LOWER(title) LIKE $2 THEN 1
	        WHEN LOWER(vendor) LIKE $2 THEN 2
	        WHEN LOWER(product_type) LIKE $2 THEN 3
	        ELSE 4
	    END,
	    title ASC`

// searchPatterns folds the query to lower case and builds the LIKE patterns
// the ranked search binds: contains-anywhere and prefix.
func searchPatterns(query string) (contains, prefix string) {
	q := strings.ToLower(query)
	return "%" + q + "%", q + "%"
}

// Search matches the query case-insensitively against title, vendor, product
// type and tags.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]product.Product, error) {
	contains, prefix := searchPatterns(query)
	rows, err := r.pool.Query(ctx, searchQuery, contains, prefix)
	if err != nil {
		r.log.Error("failed to search products", "query", query, "error", err)
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) UpsertVariant(ctx context.Context, v *product.Variant) error {
	const query = `
		INSERT INTO product_variants (external_id, product_id, title, option1, option2, option3,
		                              sku, price, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (external_id) DO UPDATE
		SET title = EXCLUDED.title, option1 = EXCLUDED.option1, option2 = EXCLUDED.option2,
		    option3 = EXCLUDED.option3, sku = EXCLUDED.sku, price = EXCLUDED.price,
		    available = EXCLUDED.available, created_at = EXCLUDED.created_at,
		    updated_at = EXCLUDED.updated_at
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		v.ExternalID, v.ProductID, v.Title, v.Option1, v.Option2, v.Option3,
		v.SKU, v.Price, v.Available, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		r.log.Error("failed to upsert variant", "external_id", v.ExternalID, "error", err)
		return fmt.Errorf("upsert variant: %w", err)
	}
	return nil
}

func (r *ProductRepository) UpsertImage(ctx context.Context, img *product.Image) error {
	const query = `
		INSERT INTO product_images (external_id, product_id, src, width, height, "position",
		                            created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE
		SET src = EXCLUDED.src, width = EXCLUDED.width, height = EXCLUDED.height,
		    "position" = EXCLUDED.position, created_at = EXCLUDED.created_at,
		    updated_at = EXCLUDED.updated_at
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		img.ExternalID, img.ProductID, img.Src, img.Width, img.Height, img.Position,
		img.CreatedAt, img.UpdatedAt,
	).Scan(&img.ID)
	if err != nil {
		r.log.Error("failed to upsert image", "external_id", img.ExternalID, "error", err)
		return fmt.Errorf("upsert image: %w", err)
	}
	return nil
}

func (r *ProductRepository) UpsertOption(ctx context.Context, opt *product.Option) error {
	const query = `
		INSERT INTO product_options (product_id, name, "position", "values")
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, name) DO UPDATE
		SET "position" = EXCLUDED.position, "values" = EXCLUDED.values
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		opt.ProductID, opt.Name, opt.Position, opt.Values,
	).Scan(&opt.ID)
	if err != nil {
		r.log.Error("failed to upsert option",
			"product_id", opt.ProductID, "name", opt.Name, "error", err)
		return fmt.Errorf("upsert option: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.ExternalID, &p.Title, &p.Handle, &p.BodyHTML, &p.Vendor,
		&p.ProductType, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt, &p.Tags,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]product.Product, error) {
	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
