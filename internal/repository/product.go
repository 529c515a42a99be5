package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/product-api/internal/domain"
	"github.com/acme/product-api/internal/repository/dao"
)

var (
	ErrProductNameExists = dao.ErrProductNameExists
	ErrProductNotFound   = dao.ErrProductNotFound
)

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindAll(ctx context.Context) ([]dao.Product, error)
	FindByID(ctx context.Context, id uint) (dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	Delete(ctx context.Context, id uint) (dao.Product, error)
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, dao.Product{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Qty:         product.Qty,
	})
	if err != nil {
		if errors.Is(err, dao.ErrProductNameExists) {
			return domain.Product{}, err
		}

		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	products := make([]domain.Product, 0, len(found))
	for _, p := range found {
		products = append(products, r.daoToDomain(p))
	}

	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return domain.Product{}, err
		}

		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Update replaces all mutable fields of the stored record. The ID and
// CreatedAt of the existing row are kept.
func (r *ProductRepository) Update(ctx context.Context, id uint, product domain.Product) (domain.Product, error) {
	existing, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return domain.Product{}, err
		}

		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Qty = product.Qty

	updated, err := r.dao.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, dao.ErrProductNameExists) {
			return domain.Product{}, err
		}

		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (domain.Product, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return domain.Product{}, err
		}

		return domain.Product{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *ProductRepository) daoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Qty:         p.Qty,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
