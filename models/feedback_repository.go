package models

import (
	"context"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// GetAll returns feedback in insertion order; feedback has no listing order of its own.
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]Feedback, error) {
	var feedback []Feedback
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
