package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	// Precio is a pointer so an omitted field is distinguishable from an
	// explicit (and legal) 0.00: nil fails required, *0 passes.
	Precio    *decimal.Decimal `json:"precio"      validate:"required,min=0"`
	Stock     int              `json:"stock"       validate:"min=0"`
	Categoria string           `json:"categoria"   validate:"max=50"`
	ImagenURL *string          `json:"imagen_url"  validate:"omitempty,max=255"`
}

// ActualizarProductoRequest is a partial update: only non-nil fields are applied.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"      validate:"omitempty,min=0"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
	Categoria   *string          `json:"categoria"   validate:"omitempty,max=50"`
	ImagenURL   *string          `json:"imagen_url"  validate:"omitempty,max=255"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter is bound from the query string of GET /productos.
// Skip/limit mirror the pagination contract the frontend already speaks.
type ProductoFilter struct {
	Categoria string `form:"categoria"`
	Skip      int    `form:"skip,default=0"    validate:"min=0"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Categoria   string          `json:"categoria"`
	ImagenURL   *string         `json:"imagen_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
}
