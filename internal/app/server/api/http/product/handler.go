package product

import (
	"context"
	"errors"
	"time"

	"catalogsync/internal/domain/product"
	"catalogsync/internal/domain/sync"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    product.Servicer
	syncer     sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service product.Servicer, syncer sync.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		syncer:     syncer,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.syncOp(), h.runSync)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	products, err := h.service.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &listOutput{Body: products}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*listOutput, error) {
	products, err := h.service.Search(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &listOutput{Body: products}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	p, err := h.service.FindByExternalID(ctx, input.ExternalID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, huma.Error404NotFound("Product not found")
		}
		return nil, err
	}

	return &findOutput{
		Body: findResponse{
			Status:  "Ok",
			Product: p,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	p := toDomain(input.Body)
	if p.ExternalID == 0 {
		// Manual adds never come from the feed; stamp a unique external id
		// from the clock so sync can't collide with it.
		p.ExternalID = time.Now().UnixMilli()
	}
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	saved, err := h.service.Save(ctx, p)
	if err != nil {
		if errors.Is(err, product.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &output{
		Body: response{
			ExternalID: saved.ExternalID,
			Status:     "Ok",
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	updated, err := h.service.Update(ctx, input.ExternalID, toDomain(input.Body))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, huma.Error404NotFound("Product not found")
		}
		return nil, err
	}

	return &output{
		Body: response{
			ExternalID: updated.ExternalID,
			Status:     "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	if err := h.service.DeleteByExternalID(ctx, input.ExternalID); err != nil {
		return nil, err
	}
	return &output{
		Body: response{
			Status:  "Ok",
			Message: "Product deleted successfully",
		},
	}, nil
}

func (h *Handler) runSync(ctx context.Context, _ *struct{}) (*syncOutput, error) {
	report, err := h.syncer.Run(ctx)
	if err != nil {
		h.log.Error("sync pass failed", "error", err)
		return nil, huma.Error502BadGateway("Sync pass failed: " + err.Error())
	}

	return &syncOutput{
		Body: syncResponse{
			Status: "Ok",
			Report: report,
		},
	}, nil
}

func toDomain(req request) product.Product {
	return product.Product{
		ExternalID:  req.ExternalID,
		Title:       req.Title,
		Handle:      req.Handle,
		BodyHTML:    req.BodyHTML,
		Vendor:      req.Vendor,
		ProductType: req.ProductType,
		Tags:        req.Tags,
	}
}
