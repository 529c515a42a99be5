package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/product-api/internal/domain"
	"github.com/acme/product-api/internal/repository"
)

var errDB = errors.New("connection refused")

// stubProductRepository returns canned results per call.
type stubProductRepository struct {
	product domain.Product
	list    []domain.Product
	err     error
}

func (s *stubProductRepository) Create(context.Context, domain.Product) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductRepository) FindAll(context.Context) ([]domain.Product, error) {
	return s.list, s.err
}

func (s *stubProductRepository) FindByID(context.Context, uint) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductRepository) Update(context.Context, uint, domain.Product) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductRepository) Delete(context.Context, uint) (domain.Product, error) {
	return s.product, s.err
}

func TestProductService_Create(t *testing.T) {
	want := domain.Product{ID: 1, Name: "Phone", Description: "A phone", Price: 499.99, Qty: 3}

	svc := NewProductService(&stubProductRepository{product: want})
	got, err := svc.Create(context.Background(), want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	svc = NewProductService(&stubProductRepository{err: repository.ErrProductNameExists})
	_, err = svc.Create(context.Background(), want)
	assert.ErrorIs(t, err, ErrProductNameExists)

	svc = NewProductService(&stubProductRepository{err: errDB})
	_, err = svc.Create(context.Background(), want)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrProductNameExists)
}

func TestProductService_Get(t *testing.T) {
	want := domain.Product{ID: 7, Name: "Laptop"}

	svc := NewProductService(&stubProductRepository{product: want})
	got, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	svc = NewProductService(&stubProductRepository{err: repository.ErrProductNotFound})
	_, err = svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_List(t *testing.T) {
	want := []domain.Product{{ID: 1, Name: "Phone"}, {ID: 2, Name: "Laptop"}}

	svc := NewProductService(&stubProductRepository{list: want})
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	svc = NewProductService(&stubProductRepository{err: errDB})
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, errDB)
}

func TestProductService_Update(t *testing.T) {
	want := domain.Product{ID: 1, Name: "Phone X"}

	svc := NewProductService(&stubProductRepository{product: want})
	got, err := svc.Update(context.Background(), 1, want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	svc = NewProductService(&stubProductRepository{err: repository.ErrProductNotFound})
	_, err = svc.Update(context.Background(), 42, want)
	assert.ErrorIs(t, err, ErrProductNotFound)

	svc = NewProductService(&stubProductRepository{err: repository.ErrProductNameExists})
	_, err = svc.Update(context.Background(), 1, want)
	assert.ErrorIs(t, err, ErrProductNameExists)
}

func TestProductService_Delete(t *testing.T) {
	want := domain.Product{ID: 1, Name: "Phone"}

	svc := NewProductService(&stubProductRepository{product: want})
	got, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	svc = NewProductService(&stubProductRepository{err: repository.ErrProductNotFound})
	_, err = svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
