package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVentaRequest struct {
	ProductoID uint `json:"producto_id" validate:"required,min=1"`
	Cantidad   int  `json:"cantidad"    validate:"required,min=1"`
	// Money fields are pointers: callers must send them, but an explicit 0
	// (free item, full discount) is valid, so nil and zero must differ.
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"required,min=0"`
	// Total is trusted as supplied — sale-time discounts make it legitimate
	// for it to differ from cantidad × precio_unitario.
	Total *decimal.Decimal `json:"total" validate:"required,min=0"`

	ClienteNombre    *string `json:"cliente_nombre"    validate:"omitempty,max=100"`
	ClienteDocumento *string `json:"cliente_documento" validate:"omitempty,max=20"`
	ClienteEmail     *string `json:"cliente_email"     validate:"omitempty,email"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /ventas.
type VentaFilter struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=500"`
}

// RangoFechaFilter is bound from GET /ventas/fecha. Dates are YYYY-MM-DD or
// RFC3339; both endpoints of the range are inclusive.
type RangoFechaFilter struct {
	Inicio string `form:"inicio" validate:"required"`
	Fin    string `form:"fin"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	FechaVenta     time.Time       `json:"fecha_venta"`

	ClienteNombre    *string `json:"cliente_nombre"`
	ClienteDocumento *string `json:"cliente_documento"`
	ClienteEmail     *string `json:"cliente_email"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}
