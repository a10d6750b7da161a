package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type SupportsRepository struct {
	db *gorm.DB
}

func NewSupportsRepository(db *gorm.DB) *SupportsRepository {
	return &SupportsRepository{db: db}
}

func (r *SupportsRepository) Create(ctx context.Context, support *Support) error {
	return r.db.WithContext(ctx).Create(support).Error
}

func (r *SupportsRepository) Update(ctx context.Context, support *Support) error {
	return r.db.WithContext(ctx).Save(support).Error
}

func (r *SupportsRepository) GetAll(ctx context.Context) ([]Support, error) {
	var supports []Support
	if err := r.db.WithContext(ctx).Scopes(OrderByName).Find(&supports).Error; err != nil {
		return nil, err
	}
	return supports, nil
}

func (r *SupportsRepository) GetByID(ctx context.Context, id uint) (*Support, error) {
	var support Support
	if err := r.db.WithContext(ctx).First(&support, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupportNotFound
		}
		return nil, err
	}
	return &support, nil
}

func (r *SupportsRepository) GetByIDAndSlug(ctx context.Context, id uint, slug string) (*Support, error) {
	var support Support
	if err := r.db.WithContext(ctx).Where("id = ? AND slug = ?", id, slug).First(&support).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupportNotFound
		}
		return nil, err
	}
	return &support, nil
}

func (r *SupportsRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Support{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSupportNotFound
	}
	return nil
}
