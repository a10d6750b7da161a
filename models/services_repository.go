package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ServicesRepository struct {
	db *gorm.DB
}

func NewServicesRepository(db *gorm.DB) *ServicesRepository {
	return &ServicesRepository{db: db}
}

// Create attaches the service to its product. A product holds at most one service.
func (r *ServicesRepository) Create(ctx context.Context, service *Service) error {
	err := r.db.WithContext(ctx).Create(service).Error
	if IsDuplicateKeyErr(err) {
		return ErrServiceExists
	}
	return err
}

func (r *ServicesRepository) Update(ctx context.Context, service *Service) error {
	err := r.db.WithContext(ctx).Save(service).Error
	if IsDuplicateKeyErr(err) {
		return ErrServiceExists
	}
	return err
}

func (r *ServicesRepository) GetAll(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := r.db.WithContext(ctx).Scopes(OrderByName).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServicesRepository) GetByID(ctx context.Context, id uint) (*Service, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ServicesRepository) GetByIDAndSlug(ctx context.Context, id uint, slug string) (*Service, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("id = ? AND slug = ?", id, slug))
}

func (r *ServicesRepository) GetByProduct(ctx context.Context, productID uint) (*Service, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("product_id = ?", productID))
}

func (r *ServicesRepository) first(_ context.Context, query *gorm.DB) (*Service, error) {
	var service Service
	if err := query.First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServicesRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
