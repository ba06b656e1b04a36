package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/internal/cart"
	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

type fakeOrderRepo struct {
	created []*models.Order
}

func (f *fakeOrderRepo) WithTx(_ *gorm.DB) OrderRepository {
	return f
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, businessID, orderID uuid.UUID) (*models.Order, error) {
	for _, order := range f.created {
		if order.ID == orderID && order.BusinessID == businessID {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) List(_ context.Context, businessID uuid.UUID, _ pagination.Params) ([]models.Order, string, error) {
	var rows []models.Order
	for _, order := range f.created {
		if order.BusinessID == businessID {
			rows = append(rows, *order)
		}
	}
	return rows, "", nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, businessID, orderID uuid.UUID, status enums.OrderStatus) error {
	for _, order := range f.created {
		if order.ID == orderID && order.BusinessID == businessID {
			order.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeCartProvider struct {
	cart    *cart.Cart
	pctx    *business.PricingContext
	cleared bool
}

func (f *fakeCartProvider) Snapshot(_ context.Context, _ string) (*cart.Cart, *business.PricingContext, error) {
	return f.cart, f.pctx, nil
}

func (f *fakeCartProvider) Clear(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

func newServiceForTest(repo OrderRepository, carts cartProvider) (Service, error) {
	return NewService(repo, fakeTxRunner{}, carts, nil)
}

func readyCartProvider(total int64) *fakeCartProvider {
	snapshot := cart.NewCart("la-esquina")
	precio := total
	snapshot.Lines = []cart.Line{{
		ID: uuid.New(),
		Product: cart.ProductSnapshot{
			ProductID:      uuid.New(),
			Nombre:         "Producto",
			PrecioCentavos: precio,
			CantidadMinima: 1,
		},
		Cantidad: 1,
	}}
	return &fakeCartProvider{
		cart: snapshot,
		pctx: &business.PricingContext{
			BusinessID:    uuid.New(),
			Slug:          "la-esquina",
			TipoNegocio:   enums.BusinessTypeMinorista,
			AceptaPedidos: true,
		},
	}
}

func TestSubmitValidatesCustomerFields(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(1000)
	svc, err := newServiceForTest(repo, carts)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{TelefonoCliente: "11-5555"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}

	_, err = svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{NombreCliente: "Ana"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing phone, got %v", err)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(1000)
	carts.cart.Lines = nil
	svc, _ := newServiceForTest(repo, carts)

	_, err := svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{
		NombreCliente:   "Ana",
		TelefonoCliente: "11-5555",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
}

func TestSubmitEnforcesGateAuthoritatively(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(999)
	carts.pctx.TipoNegocio = enums.BusinessTypeMayorista
	carts.pctx.PedidoMinimoCentavos = 1000
	svc, _ := newServiceForTest(repo, carts)

	_, err := svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{
		NombreCliente:   "Ana",
		TelefonoCliente: "11-5555",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict below minimum, got %v", err)
	}
	details := typed.Details().(map[string]any)
	if details["reason"] != enums.CheckoutBlockReasonBelowMinimum {
		t.Fatalf("expected below_minimum reason, got %v", details["reason"])
	}
	if details["remaining_centavos"] != int64(1) {
		t.Fatalf("expected remaining 1, got %v", details["remaining_centavos"])
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no order persisted")
	}
	if carts.cleared {
		t.Fatal("expected cart untouched on rejection")
	}
}

func TestSubmitClosedStore(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(1000)
	carts.pctx.AceptaPedidos = false
	svc, _ := newServiceForTest(repo, carts)

	_, err := svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{
		NombreCliente:   "Ana",
		TelefonoCliente: "11-5555",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for closed store, got %v", err)
	}
}

func TestSubmitPersistsSnapshotAndClearsCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(1500)
	svc, _ := newServiceForTest(repo, carts)

	dto, err := svc.Submit(context.Background(), "la-esquina", SubmitOrderInput{
		NombreCliente:   "Ana",
		TelefonoCliente: "11-5555",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if dto.Status != enums.OrderStatusPendiente {
		t.Fatalf("expected pendiente status, got %q", dto.Status)
	}
	if dto.TotalCentavos != 1500 || dto.TotalDisplay != "15.00" {
		t.Fatalf("unexpected totals %+v", dto)
	}
	if len(dto.Items) != 1 || dto.Items[0].PrecioUnitarioCentavos != 1500 {
		t.Fatalf("unexpected items %+v", dto.Items)
	}
	if !carts.cleared {
		t.Fatal("expected cart cleared after submission")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(repo.created))
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeOrderRepo{}
	carts := readyCartProvider(1000)
	svc, _ := newServiceForTest(repo, carts)
	ctx := context.Background()

	dto, err := svc.Submit(ctx, "la-esquina", SubmitOrderInput{
		NombreCliente:   "Ana",
		TelefonoCliente: "11-5555",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, dto.BusinessID, dto.ID, enums.OrderStatusConfirmado)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != enums.OrderStatusConfirmado {
		t.Fatalf("expected confirmado, got %q", updated.Status)
	}

	_, err = svc.UpdateStatus(ctx, dto.BusinessID, dto.ID, "despachado")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}
