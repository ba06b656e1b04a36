package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/internal/cart"
	"github.com/pedilo/pedilo-backend/pkg/db/models"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

type catalogRepository interface {
	FindProductDetail(ctx context.Context, businessID, productID uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, businessID uuid.UUID, params pagination.Params, filters ListFilters) ([]models.Product, string, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error
	ReplaceToppingGroups(ctx context.Context, productID uuid.UUID, groups []models.ToppingGroup) error
}

// Service exposes catalog operations for storefront and dashboard callers.
type Service interface {
	ListProducts(ctx context.Context, businessID uuid.UUID, params pagination.Params, filters ListFilters) (*ProductListResult, error)
	GetProduct(ctx context.Context, businessID, productID uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, businessID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, businessID, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error
	PricingSnapshot(ctx context.Context, businessID, productID uuid.UUID) (*cart.ProductSnapshot, []cart.ToppingGroupRule, error)
}

type service struct {
	repo catalogRepository
}

// NewService builds a catalog service with the provided repository.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, businessID uuid.UUID, params pagination.Params, filters ListFilters) (*ProductListResult, error) {
	rows, nextCursor, err := s.repo.ListProducts(ctx, businessID, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	products := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		products = append(products, *toProductDTO(&rows[i]))
	}
	return &ProductListResult{Products: products, NextCursor: nextCursor}, nil
}

func (s *service) GetProduct(ctx context.Context, businessID, productID uuid.UUID) (*ProductDTO, error) {
	row, err := s.loadProduct(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	return toProductDTO(row), nil
}

func (s *service) CreateProduct(ctx context.Context, businessID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	if businessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business id is required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	row := &models.Product{
		BusinessID:              businessID,
		Nombre:                  strings.TrimSpace(input.Nombre),
		Descripcion:             input.Descripcion,
		Categoria:               input.Categoria,
		ImagenURL:               input.ImagenURL,
		Unidad:                  input.Unidad,
		PrecioCentavos:          input.PrecioCentavos,
		PrecioMayoristaCentavos: input.PrecioMayoristaCentavos,
		CantidadMayorista:       input.CantidadMayorista,
		CantidadMinima:          input.CantidadMinima,
		EnStock:                 true,
		StockDisponible:         input.StockDisponible,
		EsDestacado:             input.EsDestacado,
		Tags:                    input.Tags,
		ToppingGroups:           buildToppingGroups(input.ToppingGroups),
	}
	if input.EnStock != nil {
		row.EnStock = *input.EnStock
	}
	if row.CantidadMinima < 1 {
		row.CantidadMinima = 1
	}

	created, err := s.repo.CreateProduct(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return toProductDTO(created), nil
}

func (s *service) UpdateProduct(ctx context.Context, businessID, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	row, err := s.loadProduct(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}

	applyUpdateToProduct(row, input)
	if err := validateWholesaleFields(row.PrecioMayoristaCentavos, row.CantidadMayorista); err != nil {
		return nil, err
	}

	if input.ToppingGroups != nil {
		if err := s.repo.ReplaceToppingGroups(ctx, row.ID, buildToppingGroups(*input.ToppingGroups)); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace topping groups")
		}
		row.ToppingGroups = nil
	}

	if _, err := s.repo.UpdateProduct(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}

	fresh, err := s.loadProduct(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	return toProductDTO(fresh), nil
}

func (s *service) DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error {
	if _, err := s.loadProduct(ctx, businessID, productID); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, businessID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// PricingSnapshot freezes the catalog data the cart engine needs: the
// product's price fields and the topping rules with current surcharges.
func (s *service) PricingSnapshot(ctx context.Context, businessID, productID uuid.UUID) (*cart.ProductSnapshot, []cart.ToppingGroupRule, error) {
	row, err := s.loadProduct(ctx, businessID, productID)
	if err != nil {
		return nil, nil, err
	}
	if !row.EnStock {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "product is out of stock")
	}

	snapshot := &cart.ProductSnapshot{
		ProductID:               row.ID,
		Nombre:                  row.Nombre,
		Unidad:                  row.Unidad,
		ImagenURL:               row.ImagenURL,
		PrecioCentavos:          row.PrecioCentavos,
		PrecioMayoristaCentavos: row.PrecioMayoristaCentavos,
		CantidadMayorista:       row.CantidadMayorista,
		CantidadMinima:          row.CantidadMinima,
	}

	rules := make([]cart.ToppingGroupRule, 0, len(row.ToppingGroups))
	for _, group := range row.ToppingGroups {
		rule := cart.ToppingGroupRule{
			GroupID:        group.ID,
			Nombre:         group.Nombre,
			MinSelecciones: group.MinSelecciones,
			MaxSelecciones: group.MaxSelecciones,
			Options:        make([]cart.ToppingOptionRule, 0, len(group.Options)),
		}
		for _, option := range group.Options {
			rule.Options = append(rule.Options, cart.ToppingOptionRule{
				OptionID:            option.ID,
				Nombre:              option.Nombre,
				PrecioExtraCentavos: option.PrecioExtraCentavos,
			})
		}
		rules = append(rules, rule)
	}
	return snapshot, rules, nil
}

func (s *service) loadProduct(ctx context.Context, businessID, productID uuid.UUID) (*models.Product, error) {
	row, err := s.repo.FindProductDetail(ctx, businessID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return row, nil
}

func validateProductInput(input CreateProductInput) error {
	if strings.TrimSpace(input.Nombre) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "nombre is required")
	}
	if input.PrecioCentavos < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "precio_centavos must be >= 0")
	}
	if !input.Unidad.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid unidad")
	}
	if err := validateWholesaleFields(input.PrecioMayoristaCentavos, input.CantidadMayorista); err != nil {
		return err
	}
	for _, group := range input.ToppingGroups {
		if strings.TrimSpace(group.Nombre) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "topping group nombre is required")
		}
		if group.MinSelecciones < 0 || group.MaxSelecciones < group.MinSelecciones {
			return pkgerrors.New(pkgerrors.CodeValidation, "topping group selection bounds are invalid")
		}
	}
	return nil
}

func validateWholesaleFields(precioMayorista *int64, cantidadMayorista *int) error {
	if precioMayorista != nil && *precioMayorista < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "precio_mayorista_centavos must be >= 0")
	}
	if cantidadMayorista != nil && *cantidadMayorista < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cantidad_mayorista must be >= 1")
	}
	return nil
}

func applyUpdateToProduct(row *models.Product, input UpdateProductInput) {
	if input.Nombre != nil {
		row.Nombre = strings.TrimSpace(*input.Nombre)
	}
	if input.Descripcion != nil {
		row.Descripcion = input.Descripcion
	}
	if input.Categoria != nil {
		row.Categoria = input.Categoria
	}
	if input.ImagenURL != nil {
		row.ImagenURL = input.ImagenURL
	}
	if input.Unidad != nil {
		row.Unidad = *input.Unidad
	}
	if input.PrecioCentavos != nil {
		row.PrecioCentavos = *input.PrecioCentavos
	}
	if input.PrecioMayoristaCentavos != nil {
		row.PrecioMayoristaCentavos = input.PrecioMayoristaCentavos
	}
	if input.CantidadMayorista != nil {
		row.CantidadMayorista = input.CantidadMayorista
	}
	if input.CantidadMinima != nil && *input.CantidadMinima >= 1 {
		row.CantidadMinima = *input.CantidadMinima
	}
	if input.EnStock != nil {
		row.EnStock = *input.EnStock
	}
	if input.StockDisponible != nil {
		row.StockDisponible = input.StockDisponible
	}
	if input.EsDestacado != nil {
		row.EsDestacado = *input.EsDestacado
	}
	if input.Tags != nil {
		row.Tags = *input.Tags
	}
}

func buildToppingGroups(inputs []ToppingGroupInput) []models.ToppingGroup {
	groups := make([]models.ToppingGroup, 0, len(inputs))
	for _, input := range inputs {
		group := models.ToppingGroup{
			Nombre:         strings.TrimSpace(input.Nombre),
			MinSelecciones: input.MinSelecciones,
			MaxSelecciones: input.MaxSelecciones,
			Options:        make([]models.ToppingOption, 0, len(input.Options)),
		}
		for _, option := range input.Options {
			group.Options = append(group.Options, models.ToppingOption{
				Nombre:              strings.TrimSpace(option.Nombre),
				PrecioExtraCentavos: option.surcharge(),
			})
		}
		groups = append(groups, group)
	}
	return groups
}
