package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta records the sale of a quantity of one product.
// PrecioUnitario and Total come from the caller and are stored as supplied;
// they are not recomputed from the product's list price.
type Venta struct {
	ID             uint            `gorm:"primaryKey"`
	ProductoID     uint            `gorm:"not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaVenta     time.Time       `gorm:"not null;index"`

	ClienteNombre    *string `gorm:"size:100"`
	ClienteDocumento *string `gorm:"size:20"`
	ClienteEmail     *string `gorm:"size:100"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization for the Spanish name.
func (Venta) TableName() string { return "ventas" }
