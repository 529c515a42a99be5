package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/product-api/internal/domain"
	"github.com/acme/product-api/internal/repository"
)

var (
	ErrProductNameExists = repository.ErrProductNameExists
	ErrProductNotFound   = repository.ErrProductNotFound
)

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	Update(ctx context.Context, id uint, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id uint) (domain.Product, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

func (s *ProductService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNameExists) {
			return domain.Product{}, ErrProductNameExists
		}

		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, product domain.Product) (domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		if errors.Is(err, repository.ErrProductNameExists) {
			return domain.Product{}, ErrProductNameExists
		}

		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) (domain.Product, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
