package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/repo"
	"github.com/dkrasnov/storefront/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := validateProductInput(req.Name, req.Price); err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:  *req.Name,
		Price: *req.Price,
	}

	return s.Repo.CreateProduct(ctx, &prod)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int, req transport.UpdateProductRequest) (*models.Product, error) {
	if err := validateProductInput(req.Name, req.Price); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, *req.Name, *req.Price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return prod, nil
}

// DeleteProduct refuses to orphan the ledger: a product referenced by any
// order is kept and the caller gets a conflict.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	n, err := s.Repo.CountOrdersForProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fail(ErrConflict, "Product has existing orders")
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(ErrNotFound, "Product not found")
		}
		return err
	}
	return nil
}

func validateProductInput(name *string, price *float64) error {
	if name == nil || *name == "" || price == nil {
		return fail(ErrValidation, "Name and price are required")
	}
	if *price <= 0 {
		return fail(ErrValidation, "Price must be a number greater than 0")
	}
	return nil
}
