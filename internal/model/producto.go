package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a sellable item with a price and a stock count.
// Stock must never go negative: the DB CHECK is a backstop, the real guard is
// the conditional decrement in ProductoRepository.DescontarStockTx.
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Nombre      string          `gorm:"size:100;not null"`
	Descripcion *string         `gorm:"type:text"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	Categoria   string          `gorm:"size:50;index"`
	ImagenURL   *string         `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ventas []Venta `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (productoes → productos).
func (Producto) TableName() string { return "productos" }
