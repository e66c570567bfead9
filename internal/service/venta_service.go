package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ventario/internal/dto"
	"ventario/internal/model"
	"ventario/internal/repository"

	"gorm.io/gorm"
)

// VentaService handles sale registration and queries. RegistrarVenta owns the
// one cross-entity invariant of the system: the venta insert and the stock
// decrement commit together or not at all, and stock never goes negative.
type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	ListarPorProducto(ctx context.Context, productoID uint) ([]dto.VentaResponse, error)
	ListarPorFecha(ctx context.Context, filter dto.RangoFechaFilter) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
}

func NewVentaService(repo repository.VentaRepository, productoRepo repository.ProductoRepository) VentaService {
	return &ventaService{repo: repo, productoRepo: productoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// RegistrarVenta validates stock availability, persists the venta, and
// decrements the product's stock as one atomic unit:
//  1. Fetch the product inside the tx — missing id aborts with ErrProductoNoEncontrado.
//  2. stock < cantidad aborts with ErrStockInsuficiente before any write.
//  3. Insert the venta and run the guarded decrement; the guard re-checks
//     stock >= cantidad at UPDATE time, so a concurrent sale that drained the
//     stock in between rolls the whole transaction back.
//
// PrecioUnitario and Total are stored as supplied by the caller, never
// recomputed from the product's list price (sale-time discounts override it).
func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	var venta model.Venta

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		producto, err := s.productoRepo.FindByIDTx(tx, req.ProductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductoNoEncontrado
			}
			return err
		}
		if producto.Stock < req.Cantidad {
			return ErrStockInsuficiente
		}

		venta = model.Venta{
			ProductoID:       req.ProductoID,
			Cantidad:         req.Cantidad,
			PrecioUnitario:   *req.PrecioUnitario,
			Total:            *req.Total,
			FechaVenta:       time.Now().UTC(),
			ClienteNombre:    req.ClienteNombre,
			ClienteDocumento: req.ClienteDocumento,
			ClienteEmail:     req.ClienteEmail,
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		ok, err := s.productoRepo.DescontarStockTx(tx, req.ProductoID, req.Cantidad)
		if err != nil {
			return err
		}
		if !ok {
			// Stock drained between the read and the guarded update.
			return ErrStockInsuficiente
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return ventaToResponse(&venta), nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.VentaListResponse{
		Data:  ventasToResponses(ventas),
		Total: total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	}, nil
}

func (s *ventaService) ListarPorProducto(ctx context.Context, productoID uint) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

func (s *ventaService) ListarPorFecha(ctx context.Context, filter dto.RangoFechaFilter) ([]dto.VentaResponse, error) {
	desde, err := parseFecha(filter.Inicio, false)
	if err != nil {
		return nil, fmt.Errorf("inicio: %w", ErrFechaInvalida)
	}
	hasta, err := parseFecha(filter.Fin, true)
	if err != nil {
		return nil, fmt.Errorf("fin: %w", ErrFechaInvalida)
	}

	ventas, err := s.repo.ListByFecha(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

// parseFecha accepts YYYY-MM-DD or RFC3339. A date-only "fin" is extended to
// the end of that day so the range stays inclusive.
func parseFecha(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func ventasToResponses(ventas []model.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:               v.ID,
		ProductoID:       v.ProductoID,
		Cantidad:         v.Cantidad,
		PrecioUnitario:   v.PrecioUnitario,
		Total:            v.Total,
		FechaVenta:       v.FechaVenta,
		ClienteNombre:    v.ClienteNombre,
		ClienteDocumento: v.ClienteDocumento,
		ClienteEmail:     v.ClienteEmail,
	}
}
