package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkrasnov/storefront/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id int, name string, price float64) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	prod.Name = name
	prod.Price = price

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}

	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// CountOrdersForProduct backs the delete policy: a product referenced by
// orders cannot be removed.
func (r *GormRepo) CountOrdersForProduct(ctx context.Context, id int) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Where("product_id = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
