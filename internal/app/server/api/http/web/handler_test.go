package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"catalogsync/internal/domain/product"
	"catalogsync/internal/utils/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of the product.Servicer interface for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) FindAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockService) FindByExternalID(ctx context.Context, externalID int64) (*product.Product, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockService) Save(ctx context.Context, p product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, externalID int64, updated product.Product) (*product.Product, error) {
	args := m.Called(ctx, externalID, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockService) DeleteByExternalID(ctx context.Context, externalID int64) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

func (m *MockService) Search(ctx context.Context, query string) ([]product.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func newTestRouter(service product.Servicer) *chi.Mux {
	mux := chi.NewMux()
	NewHandler(service, logger.Discard()).SetupRoutes(mux)
	return mux
}

func strPtr(s string) *string { return &s }

func TestProductsPage(t *testing.T) {
	mux := newTestRouter(new(MockService))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hx-get=\"/products/load\"")
}

func TestLoadProducts(t *testing.T) {
	service := new(MockService)
	service.On("FindAll", mock.Anything).Return([]product.Product{
		{ID: 1, ExternalID: 1001, Title: "Seamless Shirt", Vendor: strPtr("Famme"), Tags: []string{"summer", "sale"}},
	}, nil)
	mux := newTestRouter(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/load", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Seamless Shirt")
	assert.Contains(t, body, "Famme")
	assert.Contains(t, body, "summer, sale")
}

func TestSearchProducts_PassesQuery(t *testing.T) {
	service := new(MockService)
	service.On("Search", mock.Anything, "shirt").Return([]product.Product{}, nil)
	mux := newTestRouter(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/search?query=shirt", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No products found")
	service.AssertExpectations(t)
}

func TestAddProduct(t *testing.T) {
	service := new(MockService)
	service.On("Save", mock.Anything, mock.MatchedBy(func(p product.Product) bool {
		return p.Title == "Manual" && p.ExternalID != 0 && len(p.Tags) == 2
	})).Return(&product.Product{ID: 1, ExternalID: 999, Title: "Manual"}, nil)
	mux := newTestRouter(service)

	form := url.Values{
		"title": {"Manual"},
		"tags":  {"[summer, sale]"},
	}
	req := httptest.NewRequest(http.MethodPost, "/products/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "added successfully")
	service.AssertExpectations(t)
}

func TestUpdatePage_NotFoundRedirects(t *testing.T) {
	service := new(MockService)
	service.On("FindByExternalID", mock.Anything, int64(404)).Return(nil, product.ErrNotFound)
	mux := newTestRouter(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/update/404", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get("Location"))
}

func TestUpdateProduct(t *testing.T) {
	service := new(MockService)
	service.On("Update", mock.Anything, int64(1001), mock.AnythingOfType("product.Product")).
		Return(&product.Product{ID: 7, ExternalID: 1001, Title: "Renamed"}, nil)
	mux := newTestRouter(service)

	form := url.Values{"title": {"Renamed"}}
	req := httptest.NewRequest(http.MethodPost, "/products/update/1001", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updated successfully")
}

func TestDeleteProduct(t *testing.T) {
	service := new(MockService)
	service.On("DeleteByExternalID", mock.Anything, int64(1001)).Return(nil)
	mux := newTestRouter(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/delete/1001", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted", rec.Body.String())
	service.AssertExpectations(t)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"summer", "sale"}, parseTags("[summer, sale]"))
	assert.Equal(t, []string{"a"}, parseTags("a,,  ,"))
	assert.Empty(t, parseTags(""))
}
