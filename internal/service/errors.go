package service

import "errors"

// Sentinel errors the handler layer maps to HTTP statuses via errors.Is.
var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrProductoConVentas    = errors.New("el producto tiene ventas registradas y no puede eliminarse")
	ErrFechaInvalida        = errors.New("fecha inválida, use YYYY-MM-DD o RFC3339")
)
