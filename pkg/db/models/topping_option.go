package models

import (
	"time"

	"github.com/google/uuid"
)

// ToppingOption is a selectable option inside a topping group.
type ToppingOption struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupID             uuid.UUID `gorm:"column:group_id;type:uuid;not null"`
	Nombre              string    `gorm:"column:nombre;not null"`
	PrecioExtraCentavos int64     `gorm:"column:precio_extra_centavos;not null;default:0"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
