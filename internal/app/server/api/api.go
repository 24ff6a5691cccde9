//GET    /api/v1/health                        # Liveness + store reachability (public)
//GET    /api/products                         # List products with children
//GET    /api/products/search?query=           # Ranked substring search
//POST   /api/products/sync                    # Trigger one sync pass
//GET    /api/products/{externalId}            # Fetch a single product
//POST   /api/products                         # Manual add
//PUT    /api/products/{externalId}            # Update by external id
//DELETE /api/products/{externalId}            # Delete by external id
//
// Plus the HTML fragment UI under /products, served outside huma.

package api

import (
	healthAPI "catalogsync/internal/app/server/api/http/health"
	"catalogsync/internal/app/server/api/http/middleware"
	"catalogsync/internal/app/server/api/http/middleware/logger"
	productAPI "catalogsync/internal/app/server/api/http/product"
	webAPI "catalogsync/internal/app/server/api/http/web"
	"catalogsync/internal/domain/product"
	"catalogsync/internal/domain/sync"
	"catalogsync/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Product *productAPI.Handler
	Web     *webAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.Register,
// plus the server-rendered fragment routes mounted directly on the mux.
func New(storage *postgres.Storage, syncer sync.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Catalogsync API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, syncer, log)
	h.Health.SetupRoutes(API)
	h.Product.SetupRoutes(API)
	h.Web.SetupRoutes(mux)

	return mux
}

func handlers(storage *postgres.Storage, syncer sync.Servicer, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage, log, middlewares.GetAllAndClear())

	productRepo := postgres.NewProductRepository(storage, log)
	productService := product.NewService(productRepo, log)
	middlewares.Add(loggerMW.Middleware())
	productHandler := productAPI.NewHandler(productService, syncer, log, middlewares.GetAllAndClear())

	webHandler := webAPI.NewHandler(productService, log)

	return &Handlers{
		Health:  healthHandler,
		Product: productHandler,
		Web:     webHandler,
	}
}
