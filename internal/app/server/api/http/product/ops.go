package product

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-list",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "List all products",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-search",
		Method:      http.MethodGet,
		Path:        "/api/products/search",
		Summary:     "Search products",
		Description: "Case-insensitive substring search over title, vendor, product type and tags. Title-prefix matches rank first.",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-find",
		Method:      http.MethodGet,
		Path:        "/api/products/{externalId}",
		Summary:     "Get a product by external id",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-create",
		Method:      http.MethodPost,
		Path:        "/api/products",
		Summary:     "Add a product",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-update",
		Method:      http.MethodPut,
		Path:        "/api/products/{externalId}",
		Summary:     "Update a product",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-delete",
		Method:      http.MethodDelete,
		Path:        "/api/products/{externalId}",
		Summary:     "Delete a product by external id",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) syncOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-sync",
		Method:      http.MethodPost,
		Path:        "/api/products/sync",
		Summary:     "Run a feed synchronization pass",
		Description: "Fetches the configured feed and upserts its products. Item failures are reported, not fatal.",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}
