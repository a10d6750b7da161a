package models

import "gorm.io/gorm"

// Service is an optional after-sales offering attached to a single product.
// ProductID zero is the empty reference.
type Service struct {
	ID          uint   `gorm:"primaryKey;index:idx_services_id_slug,priority:1"`
	ProductID   uint   `gorm:"not null;uniqueIndex:idx_services_product_id"`
	Name        string `gorm:"size:200;not null;index"`
	Slug        string `gorm:"size:200;not null;default:'';index;index:idx_services_id_slug,priority:2"`
	Description string `gorm:"type:text;not null;default:''"`
	ServiceID   int    `gorm:"not null;default:0"`
}

func (s *Service) TableName() string {
	return "services"
}

func (s *Service) String() string {
	return s.Name
}

// AbsoluteURL returns the path of the service page.
func (s *Service) AbsoluteURL(r Reverser) (string, error) {
	return reverse(r, RouteServicePage, s.ID, s.Slug, true)
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	if err := checkLen("service.name", s.Name, 200); err != nil {
		return err
	}
	return checkLen("service.slug", s.Slug, 200)
}
