package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/api/middleware"
	cartsvc "github.com/pedilo/pedilo-backend/internal/cart"
	catalogsvc "github.com/pedilo/pedilo-backend/internal/catalog"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

type stubCatalogService struct {
	dto  *catalogsvc.ProductDTO
	list *catalogsvc.ProductListResult
	err  error

	gotBusinessID uuid.UUID
	gotFilters    catalogsvc.ListFilters
	gotParams     pagination.Params
	gotCreate     catalogsvc.CreateProductInput
	deleted       bool
}

func (s *stubCatalogService) ListProducts(_ context.Context, businessID uuid.UUID, params pagination.Params, filters catalogsvc.ListFilters) (*catalogsvc.ProductListResult, error) {
	s.gotBusinessID = businessID
	s.gotParams = params
	s.gotFilters = filters
	return s.list, s.err
}

func (s *stubCatalogService) GetProduct(_ context.Context, businessID, _ uuid.UUID) (*catalogsvc.ProductDTO, error) {
	s.gotBusinessID = businessID
	return s.dto, s.err
}

func (s *stubCatalogService) CreateProduct(_ context.Context, businessID uuid.UUID, input catalogsvc.CreateProductInput) (*catalogsvc.ProductDTO, error) {
	s.gotBusinessID = businessID
	s.gotCreate = input
	return s.dto, s.err
}

func (s *stubCatalogService) UpdateProduct(_ context.Context, businessID, _ uuid.UUID, _ catalogsvc.UpdateProductInput) (*catalogsvc.ProductDTO, error) {
	s.gotBusinessID = businessID
	return s.dto, s.err
}

func (s *stubCatalogService) DeleteProduct(_ context.Context, businessID, _ uuid.UUID) error {
	s.gotBusinessID = businessID
	s.deleted = true
	return s.err
}

func (s *stubCatalogService) PricingSnapshot(_ context.Context, _, _ uuid.UUID) (*cartsvc.ProductSnapshot, []cartsvc.ToppingGroupRule, error) {
	return nil, nil, s.err
}

func withBusinessID(req *http.Request, id uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithBusinessID(req.Context(), id))
}

func TestProductListForwardsFilters(t *testing.T) {
	businessID := uuid.New()
	svc := &stubCatalogService{list: &catalogsvc.ProductListResult{Products: []catalogsvc.ProductDTO{}}}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/negocios/la-esquina/productos?categoria=panificados&destacados=true&limit=10&cursor=abc", nil)
	req = withBusinessID(req, businessID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotBusinessID != businessID {
		t.Fatalf("expected business id forwarded, got %s", svc.gotBusinessID)
	}
	if svc.gotFilters.Categoria == nil || *svc.gotFilters.Categoria != "panificados" {
		t.Fatalf("expected categoria filter, got %+v", svc.gotFilters)
	}
	if !svc.gotFilters.Destacados || svc.gotFilters.SoloEnStock {
		t.Fatalf("unexpected bool filters %+v", svc.gotFilters)
	}
	if svc.gotParams.Limit != 10 || svc.gotParams.Cursor != "abc" {
		t.Fatalf("unexpected pagination %+v", svc.gotParams)
	}
}

func TestVendorCreateProduct(t *testing.T) {
	businessID := uuid.New()
	svc := &stubCatalogService{dto: &catalogsvc.ProductDTO{ID: uuid.New(), Nombre: "Hamburguesa"}}
	handler := VendorCreateProduct(svc, nil)

	payload := []byte(`{
		"nombre": "Hamburguesa",
		"unidad": "unidad",
		"precio_centavos": 50000,
		"topping_groups": [{
			"nombre": "Extras",
			"min_selecciones": 0,
			"max_selecciones": 2,
			"options": [{"nombre": "Cheddar", "precio_extra_centavos": 10000}]
		}]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/la-esquina/productos", bytes.NewReader(payload))
	req = withBusinessID(req, businessID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotCreate.Unidad != enums.ProductUnitUnidad || svc.gotCreate.PrecioCentavos != 50000 {
		t.Fatalf("unexpected input %+v", svc.gotCreate)
	}
	if len(svc.gotCreate.ToppingGroups) != 1 || len(svc.gotCreate.ToppingGroups[0].Options) != 1 {
		t.Fatalf("expected topping groups forwarded, got %+v", svc.gotCreate.ToppingGroups)
	}
}

func TestVendorCreateProductBadUnit(t *testing.T) {
	svc := &stubCatalogService{}
	handler := VendorCreateProduct(svc, nil)

	payload := []byte(`{"nombre":"X","unidad":"cajon","precio_centavos":100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/la-esquina/productos", bytes.NewReader(payload))
	req = withBusinessID(req, uuid.New())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}

	router := newTestRouterWithParam("productId", ProductDetail(svc, nil))
	req := withBusinessID(httptest.NewRequest(http.MethodGet, "/"+uuid.NewString(), nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestProductDetailInvalidID(t *testing.T) {
	svc := &stubCatalogService{}

	router := newTestRouterWithParam("productId", ProductDetail(svc, nil))
	req := withBusinessID(httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestVendorDeleteProduct(t *testing.T) {
	svc := &stubCatalogService{}

	router := newTestRouterWithParam("productId", VendorDeleteProduct(svc, nil))
	req := withBusinessID(httptest.NewRequest(http.MethodDelete, "/"+uuid.NewString(), nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.deleted {
		t.Fatal("expected delete forwarded to service")
	}
}

func TestVendorListDecodesEnvelope(t *testing.T) {
	svc := &stubCatalogService{list: &catalogsvc.ProductListResult{
		Products:   []catalogsvc.ProductDTO{{ID: uuid.New(), Nombre: "Pan"}},
		NextCursor: "next",
	}}
	handler := ProductList(svc, nil)

	req := withBusinessID(httptest.NewRequest(http.MethodGet, "/api/v1/negocios/la-esquina/productos", nil), uuid.New())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope struct {
		Data catalogsvc.ProductListResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Products) != 1 || envelope.Data.NextCursor != "next" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}
