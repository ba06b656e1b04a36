package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
)

type businessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	Update(ctx context.Context, row *models.Business) error
	SetAceptaPedidos(ctx context.Context, id uuid.UUID, acepta bool) error
}

// Service exposes storefront profile operations.
type Service interface {
	GetBySlug(ctx context.Context, slug string) (*BusinessDTO, error)
	PricingContextBySlug(ctx context.Context, slug string) (*PricingContext, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*BusinessDTO, error)
	SetAceptaPedidos(ctx context.Context, id uuid.UUID, acepta bool) (*BusinessDTO, error)
}

type service struct {
	repo businessRepository
}

// NewService builds a business service with the provided repository.
func NewService(repo businessRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("business repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*BusinessDTO, error) {
	row, err := s.loadBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toDTO(row), nil
}

func (s *service) PricingContextBySlug(ctx context.Context, slug string) (*PricingContext, error) {
	row, err := s.loadBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toPricingContext(row), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*BusinessDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load business")
	}

	if input.Nombre != nil {
		row.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		row.Descripcion = input.Descripcion
	}
	if input.Telefono != nil {
		row.Telefono = input.Telefono
	}
	if input.Direccion != nil {
		row.Direccion = input.Direccion
	}
	if input.LogoURL != nil {
		row.LogoURL = input.LogoURL
	}
	if input.TipoNegocio != nil {
		if !input.TipoNegocio.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tipo_negocio")
		}
		row.TipoNegocio = *input.TipoNegocio
	}
	if input.PedidoMinimoCentavos != nil {
		if *input.PedidoMinimoCentavos < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "pedido_minimo_centavos must be >= 0")
		}
		row.PedidoMinimoCentavos = *input.PedidoMinimoCentavos
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update business")
	}
	return toDTO(row), nil
}

func (s *service) SetAceptaPedidos(ctx context.Context, id uuid.UUID, acepta bool) (*BusinessDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load business")
	}

	if err := s.repo.SetAceptaPedidos(ctx, id, acepta); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set acepta_pedidos")
	}
	row.AceptaPedidos = acepta
	return toDTO(row), nil
}

func (s *service) loadBySlug(ctx context.Context, slug string) (*models.Business, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	row, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load business")
	}
	return row, nil
}
