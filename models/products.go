package models

import (
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	priceDigits   = 10
	priceDecimals = 2
)

// Product represents a product in the catalog.
// It belongs to exactly one category and owns at most one service.
type Product struct {
	ID          uint            `gorm:"primaryKey;index:idx_products_id_slug,priority:1"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name        string          `gorm:"size:200;not null;index"`
	Slug        string          `gorm:"size:200;not null;index;index:idx_products_id_slug,priority:2"`
	Image       string          `gorm:"size:100;not null;default:''"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available   *bool           `gorm:"not null;default:true"`
	Created     time.Time       `gorm:"autoCreateTime;<-:create"`
	Updated     time.Time       `gorm:"autoUpdateTime"`
	ProductID   int             `gorm:"not null;default:0"`
	Service     *Service        `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// NewProduct returns a product in the given category. Availability is left
// unset so the column default applies.
func NewProduct(categoryID uint, name string, price decimal.Decimal) *Product {
	return &Product{
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
	}
}

// IsAvailable reports the available flag; an unset flag means available.
func (p *Product) IsAvailable() bool {
	return p.Available == nil || *p.Available
}

// SetAvailable sets the available flag explicitly.
func (p *Product) SetAvailable(v bool) {
	p.Available = &v
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	return p.Name + " " + strconv.Itoa(p.ProductID)
}

// AbsoluteURL returns the path of the product detail page.
func (p *Product) AbsoluteURL(r Reverser) (string, error) {
	return reverse(r, RouteProductDetail, p.ID, p.Slug, true)
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.CategoryID == 0 {
		if p.Category.ID == 0 {
			return ErrCategoryRequired
		}
		p.CategoryID = p.Category.ID
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.Slug == "" {
		return ErrSlugRequired
	}
	if err := checkLen("product.name", p.Name, 200); err != nil {
		return err
	}
	if err := checkLen("product.slug", p.Slug, 200); err != nil {
		return err
	}
	if err := checkLen("product.image", p.Image, 100); err != nil {
		return err
	}
	return CheckPrice(p.Price)
}

// CheckPrice reports whether d fits a decimal(10,2) column without rounding.
func CheckPrice(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(priceDecimals)) {
		return fmt.Errorf("%s has more than %d decimal places: %w", d, priceDecimals, ErrPriceOutOfRange)
	}
	limit := decimal.New(1, priceDigits-priceDecimals)
	if d.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("%s has more than %d digits: %w", d, priceDigits, ErrPriceOutOfRange)
	}
	return nil
}

// ImagePath returns the storage path of an uploaded product image,
// partitioned by upload date: products/<year>/<month>/<day>/<filename>.
func ImagePath(filename string, at time.Time) string {
	return path.Join("products", at.Format("2006/01/02"), path.Base(filename))
}
