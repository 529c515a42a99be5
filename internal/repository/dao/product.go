package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProductNameExists = errors.New("product already exists")
	ErrProductNotFound   = errors.New("product not found")
)

type Product struct {
	ID uint `gorm:"primaryKey"`

	Name        string  `gorm:"size:100;unique;not null"`
	Description string  `gorm:"size:200;not null"`
	Price       float64 `gorm:"not null"`
	Qty         int     `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		if isNameConflict(result.Error) {
			return Product{}, ErrProductNameExists
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product

	// Insertion order, so listings stay deterministic.
	result := d.db.WithContext(ctx).Order("id ASC").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Save(&product)
	if result.Error != nil {
		if isNameConflict(result.Error) {
			return Product{}, ErrProductNameExists
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) Delete(ctx context.Context, id uint) (Product, error) {
	product, err := d.FindByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	result := d.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func isNameConflict(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_products_name"`)
}
