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
	"github.com/pedilo/pedilo-backend/internal/business"
	cartsvc "github.com/pedilo/pedilo-backend/internal/cart"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
)

type stubCartService struct {
	view     *cartsvc.CartView
	decision *cartsvc.Decision
	err      error

	gotSlug      string
	gotProductID uuid.UUID
	gotQty       int
	cleared      bool
}

func (s *stubCartService) GetCart(_ context.Context, slug string) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	return s.view, s.err
}

func (s *stubCartService) AddSimple(_ context.Context, slug string, productID uuid.UUID) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	s.gotProductID = productID
	return s.view, s.err
}

func (s *stubCartService) AddWithToppings(_ context.Context, slug string, input cartsvc.AddWithToppingsInput) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	s.gotProductID = input.ProductID
	s.gotQty = input.Cantidad
	return s.view, s.err
}

func (s *stubCartService) Increase(_ context.Context, slug string, _ uuid.UUID) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	return s.view, s.err
}

func (s *stubCartService) Decrease(_ context.Context, slug string, _ uuid.UUID) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	return s.view, s.err
}

func (s *stubCartService) SetQuantity(_ context.Context, slug string, productID uuid.UUID, qty int) (*cartsvc.CartView, error) {
	s.gotSlug = slug
	s.gotProductID = productID
	s.gotQty = qty
	return s.view, s.err
}

func (s *stubCartService) Clear(_ context.Context, slug string) error {
	s.gotSlug = slug
	s.cleared = true
	return s.err
}

func (s *stubCartService) CheckoutDecision(_ context.Context, slug string) (*cartsvc.Decision, error) {
	s.gotSlug = slug
	return s.decision, s.err
}

func (s *stubCartService) Snapshot(_ context.Context, slug string) (*cartsvc.Cart, *business.PricingContext, error) {
	s.gotSlug = slug
	return nil, nil, s.err
}

func emptyCartView(slug string) *cartsvc.CartView {
	return &cartsvc.CartView{
		Slug:         slug,
		Lines:        []cartsvc.LineView{},
		TotalDisplay: "0.00",
		Gate:         cartsvc.Decision{Allowed: true},
	}
}

func withSlug(req *http.Request, slug string) *http.Request {
	return req.WithContext(middleware.WithSlug(req.Context(), slug))
}

func TestCartFetch(t *testing.T) {
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartFetch(svc, nil)

	req := withSlug(httptest.NewRequest(http.MethodGet, "/api/v1/negocios/la-esquina/cart", nil), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotSlug != "la-esquina" {
		t.Fatalf("expected slug forwarded, got %q", svc.gotSlug)
	}

	var envelope struct {
		Data cartsvc.CartView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Slug != "la-esquina" || envelope.Data.TotalDisplay != "0.00" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestCartAddItem(t *testing.T) {
	productID := uuid.New()
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartAddItem(svc, nil)

	payload := []byte(`{"product_id":"` + productID.String() + `"}`)
	req := withSlug(httptest.NewRequest(http.MethodPost, "/api/v1/negocios/la-esquina/cart/items", bytes.NewReader(payload)), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotProductID != productID {
		t.Fatalf("expected product id forwarded, got %s", svc.gotProductID)
	}
}

func TestCartAddItemRejectsBadBody(t *testing.T) {
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartAddItem(svc, nil)

	req := withSlug(httptest.NewRequest(http.MethodPost, "/api/v1/negocios/la-esquina/cart/items", bytes.NewReader([]byte(`{"product_id":"not-a-uuid"}`))), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartAddWithToppings(t *testing.T) {
	productID := uuid.New()
	optionID := uuid.New()
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartAddWithToppings(svc, nil)

	payload := []byte(`{"product_id":"` + productID.String() + `","cantidad":2,"option_ids":["` + optionID.String() + `"]}`)
	req := withSlug(httptest.NewRequest(http.MethodPost, "/api/v1/negocios/la-esquina/cart/items/toppings", bytes.NewReader(payload)), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotQty != 2 || svc.gotProductID != productID {
		t.Fatalf("expected input forwarded, got qty=%d product=%s", svc.gotQty, svc.gotProductID)
	}
}

func TestCartAddWithToppingsRejectsZeroQuantity(t *testing.T) {
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartAddWithToppings(svc, nil)

	payload := []byte(`{"product_id":"` + uuid.NewString() + `","cantidad":0}`)
	req := withSlug(httptest.NewRequest(http.MethodPost, "/api/v1/negocios/la-esquina/cart/items/toppings", bytes.NewReader(payload)), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartSetQuantityZeroAllowed(t *testing.T) {
	productID := uuid.New()
	svc := &stubCartService{view: emptyCartView("la-esquina")}
	handler := CartSetQuantity(svc, nil)

	payload := []byte(`{"product_id":"` + productID.String() + `","cantidad":0}`)
	req := withSlug(httptest.NewRequest(http.MethodPut, "/api/v1/negocios/la-esquina/cart/items/quantity", bytes.NewReader(payload)), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotQty != 0 {
		t.Fatalf("expected zero quantity forwarded, got %d", svc.gotQty)
	}
}

func TestCartClear(t *testing.T) {
	svc := &stubCartService{}
	handler := CartClear(svc, nil)

	req := withSlug(httptest.NewRequest(http.MethodDelete, "/api/v1/negocios/la-esquina/cart", nil), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.cleared {
		t.Fatal("expected clear to be called")
	}
}

func TestCartMutationStoreClosed(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "store is not accepting orders").
		WithDetails(map[string]any{"reason": enums.CheckoutBlockReasonStoreClosed})}
	handler := CartAddItem(svc, nil)

	payload := []byte(`{"product_id":"` + uuid.NewString() + `"}`)
	req := withSlug(httptest.NewRequest(http.MethodPost, "/api/v1/negocios/la-esquina/cart/items", bytes.NewReader(payload)), "la-esquina")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
}
