package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductFilters struct {
	CategorySlug  string
	AvailableOnly bool
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// OrderByName is the default listing order of categories, products, services and supports.
func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Omit("Category", "Service").Create(product).Error
}

// Update writes every column except created; updated is refreshed by gorm.
func (r *ProductsRepository) Update(ctx context.Context, product *Product) error {
	if product.Available == nil {
		product.SetAvailable(true)
	}
	return r.db.WithContext(ctx).Omit("Category", "Service").Save(product).Error
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Scopes(OrderByName).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, filters ProductFilters) ([]Product, error) {
	var products []Product

	query := r.db.WithContext(ctx).Model(&Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category").
		Order("products.name ASC")

	if filters.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.AvailableOnly {
		query = query.Where("products.available = ?", true)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Service").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// GetByIDAndSlug is the product detail lookup, served by idx_products_id_slug.
func (r *ProductsRepository) GetByIDAndSlug(ctx context.Context, id uint, slug string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Service").
		Where("id = ? AND slug = ?", id, slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and its service.
func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteProducts(tx, "id = ?", id)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// deleteProducts removes the products matching the condition together with
// their services and returns how many products were removed.
func deleteProducts(tx *gorm.DB, query string, args ...any) (int, error) {
	var ids []uint
	if err := tx.Model(&Product{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&Service{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Where("id IN ?", ids).Delete(&Product{}).Error; err != nil {
		return 0, err
	}
	return len(ids), nil
}
