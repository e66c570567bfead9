package tests

import (
	"context"
	"sort"
	"testing"
	"time"

	"ventario/internal/dto"
	"ventario/internal/model"
	"ventario/internal/repository"
	"ventario/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory VentaRepository stub ───────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uint]*model.Venta
	nextID uint
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uint]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	r.nextID++
	v.ID = r.nextID
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) sorted() []*model.Venta {
	ids := make([]int, 0, len(r.ventas))
	for id := range r.ventas {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]*model.Venta, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.ventas[uint(id)])
	}
	return out
}

func (r *stubVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	all := r.sorted()
	total := int64(len(all))
	if filter.Skip < len(all) {
		all = all[filter.Skip:]
	} else {
		all = nil
	}
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	out := make([]model.Venta, 0, len(all))
	for _, v := range all {
		out = append(out, *v)
	}
	return out, total, nil
}

func (r *stubVentaRepo) ListByProducto(_ context.Context, productoID uint) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.sorted() {
		if v.ProductoID == productoID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ListByFecha(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.sorted() {
		if !v.FechaVenta.Before(desde) && !v.FechaVenta.After(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) CountTotal(_ context.Context) (int64, error) {
	return int64(len(r.ventas)), nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

func buildVentaSvc() (service.VentaService, *stubVentaRepo, *stubProductoRepo) {
	productoRepo := newStubProductoRepo()
	ventaRepo := newStubVentaRepo()
	productoRepo.ventas = ventaRepo
	return service.NewVentaService(ventaRepo, productoRepo), ventaRepo, productoRepo
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_DescuentaStock(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(t, productoRepo, "Widget", 9.99, 10, "general")

	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       3,
		PrecioUnitario: dec(9.99),
		Total:          dec(29.97),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.False(t, resp.FechaVenta.IsZero())

	// stock = 10 - 3
	assert.Equal(t, 7, productoRepo.productos[p.ID].Stock)

	// The venta is readable afterwards
	stored, err := svc.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ProductoID)
	assert.Equal(t, 3, stored.Cantidad)
}

func TestRegistrarVenta_StockInsuficiente(t *testing.T) {
	svc, ventaRepo, productoRepo := buildVentaSvc()
	p := seedProducto(t, productoRepo, "Vino", 500, 2, "bebidas")

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       5,
		PrecioUnitario: dec(500),
		Total:          dec(2500),
	})
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)

	// No partial write: stock intact, no venta row
	assert.Equal(t, 2, productoRepo.productos[p.ID].Stock)
	count, _ := ventaRepo.CountTotal(context.Background())
	assert.Equal(t, int64(0), count)
}

func TestRegistrarVenta_StockExacto(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(t, productoRepo, "Widget", 9.99, 5, "general")

	// Quantity equal to remaining stock drives it to exactly zero
	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       5,
		PrecioUnitario: dec(9.99),
		Total:          dec(49.95),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, productoRepo.productos[p.ID].Stock)

	// A follow-up sale of 1 unit is rejected
	_, err = svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       1,
		PrecioUnitario: dec(9.99),
		Total:          dec(9.99),
	})
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)
	assert.Equal(t, 0, productoRepo.productos[p.ID].Stock)
}

func TestRegistrarVenta_ProductoInexistente(t *testing.T) {
	svc, ventaRepo, _ := buildVentaSvc()

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     999,
		Cantidad:       1,
		PrecioUnitario: dec(1),
		Total:          dec(1),
	})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)

	count, _ := ventaRepo.CountTotal(context.Background())
	assert.Equal(t, int64(0), count)
}

func TestRegistrarVenta_PrecioDelCaller(t *testing.T) {
	// Unit price and total are stored as supplied, not recomputed from the
	// product's list price — a sale-time discount is legitimate.
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(t, productoRepo, "Teclado", 75.00, 10, "electronica")

	nombre := "Juan Pérez"
	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       2,
		PrecioUnitario: dec(60.00), // discounted below list price
		Total:          dec(110.00),
		ClienteNombre:  &nombre,
	})
	require.NoError(t, err)
	assert.Equal(t, "60", resp.PrecioUnitario.String())
	assert.Equal(t, "110", resp.Total.String())
	require.NotNil(t, resp.ClienteNombre)
	assert.Equal(t, "Juan Pérez", *resp.ClienteNombre)
}

func TestVentasPorProducto(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p1 := seedProducto(t, productoRepo, "A", 1, 100, "x")
	p2 := seedProducto(t, productoRepo, "B", 1, 100, "x")

	for _, pid := range []uint{p1.ID, p1.ID, p2.ID} {
		_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
			ProductoID:     pid,
			Cantidad:       1,
			PrecioUnitario: dec(1),
			Total:          dec(1),
		})
		require.NoError(t, err)
	}

	ventas, err := svc.ListarPorProducto(context.Background(), p1.ID)
	require.NoError(t, err)
	assert.Len(t, ventas, 2)
	for _, v := range ventas {
		assert.Equal(t, p1.ID, v.ProductoID)
	}
}

func TestVentasPorFecha_RangoInclusivo(t *testing.T) {
	svc, ventaRepo, productoRepo := buildVentaSvc()
	p := seedProducto(t, productoRepo, "A", 1, 100, "x")

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     p.ID,
		Cantidad:       1,
		PrecioUnitario: dec(1),
		Total:          dec(1),
	})
	require.NoError(t, err)

	// Move the stored venta to a known date to make the range assertions exact
	for _, v := range ventaRepo.ventas {
		v.FechaVenta = time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	}

	ventas, err := svc.ListarPorFecha(context.Background(), dto.RangoFechaFilter{
		Inicio: "2026-03-15", Fin: "2026-03-15",
	})
	require.NoError(t, err)
	assert.Len(t, ventas, 1, "a date-only fin must cover the whole day")

	ventas, err = svc.ListarPorFecha(context.Background(), dto.RangoFechaFilter{
		Inicio: "2026-03-16", Fin: "2026-03-20",
	})
	require.NoError(t, err)
	assert.Empty(t, ventas)
}

func TestVentasPorFecha_FechaInvalida(t *testing.T) {
	svc, _, _ := buildVentaSvc()

	_, err := svc.ListarPorFecha(context.Background(), dto.RangoFechaFilter{
		Inicio: "ayer", Fin: "2026-03-20",
	})
	assert.ErrorIs(t, err, service.ErrFechaInvalida)
}

func TestObtenerVenta_NoEncontrada(t *testing.T) {
	svc, _, _ := buildVentaSvc()

	_, err := svc.ObtenerPorID(context.Background(), 123)
	assert.ErrorIs(t, err, service.ErrVentaNoEncontrada)
}
