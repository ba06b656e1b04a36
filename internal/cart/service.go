package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/pkg/metrics"
)

type businessLoader interface {
	PricingContextBySlug(ctx context.Context, slug string) (*business.PricingContext, error)
}

type catalogLoader interface {
	PricingSnapshot(ctx context.Context, businessID, productID uuid.UUID) (*ProductSnapshot, []ToppingGroupRule, error)
}

// Service orchestrates cart mutations: business context lookup, product
// snapshotting, topping validation, aggregate mutation, persistence.
type Service interface {
	GetCart(ctx context.Context, slug string) (*CartView, error)
	AddSimple(ctx context.Context, slug string, productID uuid.UUID) (*CartView, error)
	AddWithToppings(ctx context.Context, slug string, input AddWithToppingsInput) (*CartView, error)
	Increase(ctx context.Context, slug string, lineID uuid.UUID) (*CartView, error)
	Decrease(ctx context.Context, slug string, lineID uuid.UUID) (*CartView, error)
	SetQuantity(ctx context.Context, slug string, productID uuid.UUID, qty int) (*CartView, error)
	Clear(ctx context.Context, slug string) error
	CheckoutDecision(ctx context.Context, slug string) (*Decision, error)
	Snapshot(ctx context.Context, slug string) (*Cart, *business.PricingContext, error)
}

type service struct {
	businesses businessLoader
	catalog    catalogLoader
	store      Store
	locks      *keyedMutex
	checkout   *metrics.CheckoutMetrics
}

// NewService builds a cart service backed by the provided collaborators.
// Checkout metrics may be nil.
func NewService(businesses businessLoader, catalog catalogLoader, store Store, checkout *metrics.CheckoutMetrics) (Service, error) {
	if businesses == nil {
		return nil, fmt.Errorf("business loader required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{
		businesses: businesses,
		catalog:    catalog,
		store:      store,
		locks:      newKeyedMutex(),
		checkout:   checkout,
	}, nil
}

func (s *service) GetCart(ctx context.Context, slug string) (*CartView, error) {
	pctx, err := s.businesses.PricingContextBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	return buildView(cart, CanCheckout(cart, pctx)), nil
}

func (s *service) AddSimple(ctx context.Context, slug string, productID uuid.UUID) (*CartView, error) {
	return s.mutate(ctx, slug, func(cart *Cart, pctx *business.PricingContext) error {
		product, _, err := s.catalog.PricingSnapshot(ctx, pctx.BusinessID, productID)
		if err != nil {
			return err
		}
		_, err = cart.AddSimple(*product, pctx)
		return err
	})
}

func (s *service) AddWithToppings(ctx context.Context, slug string, input AddWithToppingsInput) (*CartView, error) {
	return s.mutate(ctx, slug, func(cart *Cart, pctx *business.PricingContext) error {
		product, groups, err := s.catalog.PricingSnapshot(ctx, pctx.BusinessID, input.ProductID)
		if err != nil {
			return err
		}
		selections, err := ResolveSelections(groups, input.OptionIDs)
		if err != nil {
			return err
		}
		if err := ValidateToppingSelections(groups, selections); err != nil {
			return err
		}
		_, err = cart.AddWithToppings(*product, selections, input.Cantidad, pctx)
		return err
	})
}

func (s *service) Increase(ctx context.Context, slug string, lineID uuid.UUID) (*CartView, error) {
	return s.mutate(ctx, slug, func(cart *Cart, pctx *business.PricingContext) error {
		_, err := cart.Increase(lineID, pctx)
		return err
	})
}

func (s *service) Decrease(ctx context.Context, slug string, lineID uuid.UUID) (*CartView, error) {
	return s.mutate(ctx, slug, func(cart *Cart, pctx *business.PricingContext) error {
		_, err := cart.Decrease(lineID, pctx)
		return err
	})
}

func (s *service) SetQuantity(ctx context.Context, slug string, productID uuid.UUID, qty int) (*CartView, error) {
	return s.mutate(ctx, slug, func(cart *Cart, pctx *business.PricingContext) error {
		product, _, err := s.catalog.PricingSnapshot(ctx, pctx.BusinessID, productID)
		if err != nil {
			return err
		}
		_, err = cart.SetQuantity(*product, qty, pctx)
		return err
	})
}

func (s *service) Clear(ctx context.Context, slug string) error {
	unlock := s.locks.lock(slug)
	defer unlock()
	return s.store.Clear(ctx, slug)
}

func (s *service) CheckoutDecision(ctx context.Context, slug string) (*Decision, error) {
	pctx, err := s.businesses.PricingContextBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	decision := CanCheckout(cart, pctx)
	if decision.Allowed {
		s.checkout.IncAllowed()
	} else {
		s.checkout.IncBlocked(decision.Reason.String())
	}
	return &decision, nil
}

// Snapshot returns the current cart and pricing context for authoritative
// checks outside this service, such as order submission.
func (s *service) Snapshot(ctx context.Context, slug string) (*Cart, *business.PricingContext, error) {
	pctx, err := s.businesses.PricingContextBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	cart, err := s.store.Load(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	return cart, pctx, nil
}

// mutate runs a load-mutate-save cycle under the slug's write lock. A
// failed mutation leaves the persisted snapshot untouched.
func (s *service) mutate(ctx context.Context, slug string, fn func(*Cart, *business.PricingContext) error) (*CartView, error) {
	pctx, err := s.businesses.PricingContextBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(slug)
	defer unlock()

	cart, err := s.store.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := fn(cart, pctx); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, slug, cart); err != nil {
		return nil, err
	}
	return buildView(cart, CanCheckout(cart, pctx)), nil
}
