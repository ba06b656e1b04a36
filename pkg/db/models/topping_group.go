package models

import (
	"time"

	"github.com/google/uuid"
)

// ToppingGroup is a named set of options attached to a product, with
// min/max selection bounds enforced at add-to-cart time.
type ToppingGroup struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Nombre         string          `gorm:"column:nombre;not null"`
	MinSelecciones int             `gorm:"column:min_selecciones;not null;default:0"`
	MaxSelecciones int             `gorm:"column:max_selecciones;not null;default:1"`
	Options        []ToppingOption `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
