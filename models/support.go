package models

import "gorm.io/gorm"

// Support is a standalone help entry.
type Support struct {
	ID          uint   `gorm:"primaryKey;index:idx_supports_id_slug,priority:1"`
	Name        string `gorm:"size:400;not null;index"`
	Slug        string `gorm:"size:400;not null;default:'';index;index:idx_supports_id_slug,priority:2"`
	Description string `gorm:"type:text;not null;default:''"`
	SupportID   int    `gorm:"not null;default:0"`
}

func (s *Support) TableName() string {
	return "supports"
}

func (s *Support) String() string {
	return s.Name
}

// AbsoluteURL returns the path of the support page.
func (s *Support) AbsoluteURL(r Reverser) (string, error) {
	return reverse(r, RouteSupportPage, s.ID, s.Slug, true)
}

func (s *Support) BeforeSave(tx *gorm.DB) error {
	if err := checkLen("support.name", s.Name, 400); err != nil {
		return err
	}
	return checkLen("support.slug", s.Slug, 400)
}
