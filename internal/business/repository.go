package business

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
)

// Repository wires together business persistence helpers.
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

// FindByID loads a business without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var row models.Business
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindBySlug loads a business by its public storefront slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var row models.Business
	if err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new business row.
func (r *Repository) Create(ctx context.Context, row *models.Business) (*models.Business, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update persists the full business row.
func (r *Repository) Update(ctx context.Context, row *models.Business) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// SetAceptaPedidos flips the storefront open/closed switch.
func (r *Repository) SetAceptaPedidos(ctx context.Context, id uuid.UUID, acepta bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", id).
		Update("acepta_pedidos", acepta).
		Error
}
