package repository

import (
	"context"
	"time"

	"ventario/internal/dto"
	"ventario/internal/model"

	"gorm.io/gorm"
)

// VentaRepository defines the data access contract for sales.
type VentaRepository interface {
	// CreateTx inserts the venta inside the caller's transaction so the
	// insert and the stock decrement commit together.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	ListByProducto(ctx context.Context, productoID uint) ([]model.Venta, error)
	// ListByFecha returns ventas with fecha_venta inside [desde, hasta], both inclusive.
	ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	CountTotal(ctx context.Context) (int64, error)

	// DB exposes the DB for transaction creation in the service layer.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListByProducto(ctx context.Context, productoID uint) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("id ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("fecha_venta >= ? AND fecha_venta <= ?", desde, hasta).
		Order("fecha_venta ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).Count(&count).Error
	return count, err
}
