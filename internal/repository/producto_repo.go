package repository

import (
	"context"

	"ventario/internal/dto"
	"ventario/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	// Delete removes the row and reports whether it existed.
	Delete(ctx context.Context, id uint) (bool, error)
	// HasVentas reports whether any venta references the product.
	HasVentas(ctx context.Context, id uint) (bool, error)

	CountTotal(ctx context.Context) (int64, error)
	CountSinStock(ctx context.Context) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error)
	// DescontarStockTx decrements stock by cantidad only when enough stock
	// remains. Returns false (no error) when the guard rejected the update.
	DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Primary key order keeps pagination stable across pages.
	err := q.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *productoRepo) HasVentas(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).Where("producto_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&count).Error
	return count, err
}

func (r *productoRepo) CountSinStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("stock = 0").Count(&count).Error
	return count, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (bool, error) {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected > 0, res.Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
