package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrSupportNotFound  = errors.New("support not found")

	ErrFieldTooLong     = errors.New("field exceeds max length")
	ErrPriceOutOfRange  = errors.New("price exceeds decimal(10,2)")
	ErrCategoryRequired = errors.New("product requires a category")
	ErrRatingRequired   = errors.New("feedback requires a rating")
	ErrDuplicateSlug    = errors.New("slug already exists")
	ErrSlugRequired     = errors.New("slug is empty and cannot be derived from the name")
	ErrServiceExists    = errors.New("product already has a service")
)

// checkLen reports ErrFieldTooLong when value has more than max characters.
func checkLen(field, value string, max int) error {
	if n := len([]rune(value)); n > max {
		return fmt.Errorf("%s has %d characters, max %d: %w", field, n, max, ErrFieldTooLong)
	}
	return nil
}

// IsDuplicateKeyErr reports whether err is a unique constraint violation.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	// postgres 23505
	if strings.Contains(msg, "duplicate key value violates unique constraint") {
		return true
	}
	// sqlite 2067
	return strings.Contains(msg, "UNIQUE constraint failed")
}
