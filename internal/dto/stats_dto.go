package dto

// StatsResponse is the aggregate returned by GET /stats.
type StatsResponse struct {
	TotalProductos    int64 `json:"total_productos"`
	TotalVentas       int64 `json:"total_ventas"`
	ProductosSinStock int64 `json:"productos_sin_stock"`
}
