package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/internal/cart"
	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/metrics"
	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartProvider interface {
	Snapshot(ctx context.Context, slug string) (*cart.Cart, *business.PricingContext, error)
	Clear(ctx context.Context, slug string) error
}

// Service turns gate-approved carts into persisted orders.
type Service interface {
	Submit(ctx context.Context, slug string, input SubmitOrderInput) (*OrderDTO, error)
	List(ctx context.Context, businessID uuid.UUID, params pagination.Params) (*OrderListResult, error)
	Get(ctx context.Context, businessID, orderID uuid.UUID) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, businessID, orderID uuid.UUID, status enums.OrderStatus) (*OrderDTO, error)
}

type service struct {
	repo     OrderRepository
	tx       txRunner
	carts    cartProvider
	checkout *metrics.CheckoutMetrics
}

// NewService builds an order service backed by the provided stack.
// Checkout metrics may be nil.
func NewService(repo OrderRepository, tx txRunner, carts cartProvider, checkout *metrics.CheckoutMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart provider required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		carts:    carts,
		checkout: checkout,
	}, nil
}

// Submit re-runs the checkout gate authoritatively, snapshots the cart
// into an order, and clears the cart on success. The client-side gate is
// advisory only; this is where it binds.
func (s *service) Submit(ctx context.Context, slug string, input SubmitOrderInput) (*OrderDTO, error) {
	if strings.TrimSpace(input.NombreCliente) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre_cliente is required")
	}
	if strings.TrimSpace(input.TelefonoCliente) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "telefono_cliente is required")
	}

	snapshot, pctx, err := s.carts.Snapshot(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	decision := cart.CanCheckout(snapshot, pctx)
	if !decision.Allowed {
		s.checkout.IncBlocked(decision.Reason.String())
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout is not allowed").
			WithDetails(map[string]any{
				"reason":             decision.Reason,
				"remaining_centavos": decision.RemainingCentavos,
			})
	}
	s.checkout.IncAllowed()

	order := &models.Order{
		BusinessID:       pctx.BusinessID,
		Status:           enums.OrderStatusPendiente,
		NombreCliente:    strings.TrimSpace(input.NombreCliente),
		TelefonoCliente:  strings.TrimSpace(input.TelefonoCliente),
		DireccionEntrega: input.DireccionEntrega,
		Notas:            input.Notas,
		TotalCentavos:    snapshot.Total(),
		Items:            buildLineItems(snapshot),
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).Create(ctx, order)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	// Best effort: a stale cart snapshot is harmless once the order exists.
	_ = s.carts.Clear(ctx, slug)

	s.checkout.IncSubmitted()
	return toOrderDTO(order), nil
}

func (s *service) List(ctx context.Context, businessID uuid.UUID, params pagination.Params) (*OrderListResult, error) {
	rows, nextCursor, err := s.repo.List(ctx, businessID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	result := &OrderListResult{
		Orders:     make([]OrderDTO, 0, len(rows)),
		NextCursor: nextCursor,
	}
	for i := range rows {
		result.Orders = append(result.Orders, *toOrderDTO(&rows[i]))
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, businessID, orderID uuid.UUID) (*OrderDTO, error) {
	row, err := s.repo.FindByID(ctx, businessID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return toOrderDTO(row), nil
}

func (s *service) UpdateStatus(ctx context.Context, businessID, orderID uuid.UUID, status enums.OrderStatus) (*OrderDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}
	if err := s.repo.UpdateStatus(ctx, businessID, orderID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	return s.Get(ctx, businessID, orderID)
}

// buildLineItems freezes each cart line with its effective price at
// submission time.
func buildLineItems(snapshot *cart.Cart) []models.OrderLineItem {
	items := make([]models.OrderLineItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, models.OrderLineItem{
			ProductID:              line.Product.ProductID,
			NombreProducto:         line.Product.Nombre,
			Cantidad:               line.Cantidad,
			PrecioUnitarioCentavos: cart.EffectiveUnitPrice(line),
			TotalCentavos:          cart.LineTotal(line),
			Toppings:               line.Toppings,
		})
	}
	return items
}
