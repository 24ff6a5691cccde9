// Package web serves the server-rendered product pages. Pages are mostly
// static shells; tables and form feedback are swapped in as HTML fragments
// over htmx requests.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalogsync/internal/domain/product"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

//go:embed templates
var templatesFS embed.FS

type Handler struct {
	service product.Servicer
	log     *slog.Logger
	tmpl    *template.Template
}

type tableData struct {
	Products    []product.Product
	SearchQuery string
}

type statusData struct {
	Message     string
	MessageType string
}

type updateData struct {
	Product     *product.Product
	TagsString  string
	Message     string
	MessageType string
}

func NewHandler(service product.Servicer, log *slog.Logger) *Handler {
	tmpl := template.Must(template.New("web").
		Funcs(template.FuncMap{
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			"join": func(ss []string) string {
				return strings.Join(ss, ", ")
			},
		}).
		ParseFS(templatesFS, "templates/*.html", "templates/fragments/*.html"))

	return &Handler{
		service: service,
		log:     log.With("component", "web_handler"),
		tmpl:    tmpl,
	}
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.productsPage)
		r.Get("/search-page", h.searchPage)
		r.Get("/load", h.loadProducts)
		r.Get("/search", h.searchProducts)
		r.Post("/add", h.addProduct)
		r.Get("/update/{externalId}", h.updatePage)
		r.Post("/update/{externalId}", h.updateProduct)
		r.Delete("/delete/{externalId}", h.deleteProduct)
	})
}

func (h *Handler) productsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "products", nil)
}

func (h *Handler) searchPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "product-search", nil)
}

func (h *Handler) loadProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to load products", "error", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}
	h.render(w, "product-table", tableData{Products: products})
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	products, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.log.Error("product search failed", "query", query, "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	h.render(w, "product-table", tableData{Products: products, SearchQuery: query})
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p := productFromForm(r)
	// Manual adds never come from the feed; a clock-derived external id
	// keeps them out of sync's way.
	p.ExternalID = time.Now().UnixMilli()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	if _, err := h.service.Save(r.Context(), p); err != nil {
		h.log.Error("failed to add product", "title", p.Title, "error", err)
		h.render(w, "form-status", statusData{
			Message:     "Error adding product: " + err.Error(),
			MessageType: "error",
		})
		return
	}

	h.render(w, "form-status", statusData{
		Message:     fmt.Sprintf("Product %q added successfully!", p.Title),
		MessageType: "success",
	})
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	externalID, err := externalIDParam(r)
	if err != nil {
		http.Error(w, "invalid external id", http.StatusBadRequest)
		return
	}

	p, err := h.service.FindByExternalID(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Redirect(w, r, "/products", http.StatusSeeOther)
			return
		}
		h.log.Error("failed to load product", "external_id", externalID, "error", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	h.render(w, "product-update", updateData{
		Product:    p,
		TagsString: strings.Join(p.Tags, ", "),
	})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	externalID, err := externalIDParam(r)
	if err != nil {
		http.Error(w, "invalid external id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	incoming := productFromForm(r)
	updated, err := h.service.Update(r.Context(), externalID, incoming)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Redirect(w, r, "/products", http.StatusSeeOther)
			return
		}
		h.log.Error("failed to update product", "external_id", externalID, "error", err)
		h.render(w, "product-update", updateData{
			Product:     &incoming,
			TagsString:  strings.Join(incoming.Tags, ", "),
			Message:     "Error updating product: " + err.Error(),
			MessageType: "error",
		})
		return
	}

	h.render(w, "product-update", updateData{
		Product:     updated,
		TagsString:  strings.Join(updated.Tags, ", "),
		Message:     fmt.Sprintf("Product %q updated successfully!", updated.Title),
		MessageType: "success",
	})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	externalID, err := externalIDParam(r)
	if err != nil {
		http.Error(w, "invalid external id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteByExternalID(r.Context(), externalID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.log.Error("failed to delete product", "external_id", externalID, "error", err)
		http.Error(w, "failed to delete product", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Product deleted"))
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("template render failed", "template", name, "error", err)
	}
}

func externalIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "externalId"), 10, 64)
}

func productFromForm(r *http.Request) product.Product {
	return product.Product{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Vendor:      optional(r.PostFormValue("vendor")),
		ProductType: optional(r.PostFormValue("productType")),
		Handle:      optional(r.PostFormValue("handle")),
		BodyHTML:    optional(r.PostFormValue("bodyHtml")),
		Tags:        parseTags(r.PostFormValue("tags")),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// parseTags splits a comma-separated tag string, tolerating pasted
// bracketed lists like "[summer, sale]".
func parseTags(s string) []string {
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
