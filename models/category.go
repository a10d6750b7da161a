package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category groups products. Its slug is the URL key of the category listing.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:200;not null;index"`
	Slug     string    `gorm:"size:200;not null;uniqueIndex:idx_categories_slug"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) String() string {
	return c.Name
}

// AbsoluteURL returns the path of the product listing for this category.
func (c *Category) AbsoluteURL(r Reverser) (string, error) {
	return reverse(r, RouteProductListByCategory, c.ID, c.Slug, false)
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	if c.Slug == "" {
		return ErrSlugRequired
	}
	if err := checkLen("category.name", c.Name, 200); err != nil {
		return err
	}
	return checkLen("category.slug", c.Slug, 200)
}
