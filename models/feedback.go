package models

import (
	"strconv"

	"gorm.io/gorm"
)

// Feedback is a customer rating with optional comments.
// Rating is nullable in the table but required on save.
type Feedback struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null;default:''"`
	Rating   *int
	Comments string `gorm:"size:500;not null;default:''"`
}

func (f *Feedback) TableName() string {
	return "feedbacks"
}

func (f *Feedback) String() string {
	rating := ""
	if f.Rating != nil {
		rating = strconv.Itoa(*f.Rating)
	}
	return f.Name + " " + rating
}

func (f *Feedback) BeforeSave(tx *gorm.DB) error {
	if f.Rating == nil {
		return ErrRatingRequired
	}
	if err := checkLen("feedback.name", f.Name, 100); err != nil {
		return err
	}
	return checkLen("feedback.comments", f.Comments, 500)
}
