package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/pagination"
)

// ListFilters narrows the public catalog listing.
type ListFilters struct {
	Categoria   *string
	Destacados  bool
	SoloEnStock bool
}

// Repository wires together catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindProductDetail loads a product with its topping groups and options.
func (r *Repository) FindProductDetail(ctx context.Context, businessID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("ToppingGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("ToppingGroups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&product, "id = ? AND business_id = ?", productID, businessID).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts pages through a business catalog, newest first.
func (r *Repository) ListProducts(ctx context.Context, businessID uuid.UUID, params pagination.Params, filters ListFilters) ([]models.Product, string, error) {
	pageSize := pagination.NormalizeLimit(params.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(params.Limit)

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	qb := r.db.WithContext(ctx).
		Preload("ToppingGroups.Options").
		Where("business_id = ?", businessID)

	if filters.Categoria != nil {
		qb = qb.Where("categoria = ?", *filters.Categoria)
	}
	if filters.Destacados {
		qb = qb.Where("es_destacado = ?", true)
	}
	if filters.SoloEnStock {
		qb = qb.Where("en_stock = ?", true)
	}
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Product
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}

// CreateProduct inserts a product row with its topping groups.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product scoped to its business.
func (r *Repository) DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", productID, businessID).
		Delete(&models.Product{}).
		Error
}

// ReplaceToppingGroups swaps all topping groups (and options) for a product.
func (r *Repository) ReplaceToppingGroups(ctx context.Context, productID uuid.UUID, groups []models.ToppingGroup) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("product_id = ?", productID).Delete(&models.ToppingGroup{}).Error; err != nil {
		return err
	}
	if len(groups) == 0 {
		return nil
	}
	for i := range groups {
		groups[i].ProductID = productID
	}
	return tx.Create(&groups).Error
}
