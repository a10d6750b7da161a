package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// --- Mock Route Table ---

type MockReverser struct {
	Err error

	lastName string
	lastArgs []any
}

func (m *MockReverser) Reverse(name string, args ...any) (string, error) {
	m.lastName = name
	m.lastArgs = args
	if m.Err != nil {
		return "", m.Err
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return "/" + name + "/" + strings.Join(parts, "/") + "/", nil
}

func intPtr(v int) *int { return &v }

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		record   fmt.Stringer
		expected string
	}{
		{name: "Category", record: &Category{Name: "Electronics", Slug: "electronics"}, expected: "Electronics"},
		{name: "Product", record: &Product{Name: "Router", ProductID: 42}, expected: "Router 42"},
		{name: "Product default id", record: &Product{Name: "Cable"}, expected: "Cable 0"},
		{name: "Service", record: &Service{Name: "Installation"}, expected: "Installation"},
		{name: "Support", record: &Support{Name: "Warranty"}, expected: "Warranty"},
		{name: "Feedback", record: &Feedback{Name: "Alice", Rating: intPtr(5)}, expected: "Alice 5"},
		{name: "Feedback anonymous", record: &Feedback{Rating: intPtr(3)}, expected: " 3"},
		{name: "Feedback without rating", record: &Feedback{Name: "Bob"}, expected: "Bob "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.String())
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	type urlBuilder interface {
		AbsoluteURL(Reverser) (string, error)
	}

	testCases := []struct {
		name          string
		record        urlBuilder
		expectedRoute string
		expectedArgs  []any
		expectedPath  string
	}{
		{
			name:          "Category by slug",
			record:        &Category{ID: 3, Name: "Electronics", Slug: "electronics"},
			expectedRoute: RouteProductListByCategory,
			expectedArgs:  []any{"electronics"},
			expectedPath:  "/product_list_by_category/electronics/",
		},
		{
			name:          "Product by id and slug",
			record:        &Product{ID: 7, Slug: "usb-cable"},
			expectedRoute: RouteProductDetail,
			expectedArgs:  []any{uint(7), "usb-cable"},
			expectedPath:  "/product_detail/7/usb-cable/",
		},
		{
			name:          "Service by id and slug",
			record:        &Service{ID: 2, Slug: "setup"},
			expectedRoute: RouteServicePage,
			expectedArgs:  []any{uint(2), "setup"},
			expectedPath:  "/service_page/2/setup/",
		},
		{
			name:          "Support by id and slug",
			record:        &Support{ID: 9, Slug: "returns"},
			expectedRoute: RouteSupportPage,
			expectedArgs:  []any{uint(9), "returns"},
			expectedPath:  "/support_page/9/returns/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &MockReverser{}

			path, err := tc.record.AbsoluteURL(r)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedPath, path)
			assert.Equal(t, tc.expectedRoute, r.lastName)
			assert.Equal(t, tc.expectedArgs, r.lastArgs)
		})
	}
}

func TestAbsoluteURLErrors(t *testing.T) {
	testCases := []struct {
		name     string
		build    func(Reverser) (string, error)
		reverser Reverser
		called   bool
	}{
		{
			name:     "Unpersisted product",
			build:    (&Product{Slug: "usb-cable"}).AbsoluteURL,
			reverser: &MockReverser{},
		},
		{
			name:     "Product without slug",
			build:    (&Product{ID: 7}).AbsoluteURL,
			reverser: &MockReverser{},
		},
		{
			name:     "Service with default slug",
			build:    (&Service{ID: 1}).AbsoluteURL,
			reverser: &MockReverser{},
		},
		{
			name:     "Category without slug",
			build:    (&Category{Name: "Loose"}).AbsoluteURL,
			reverser: &MockReverser{},
		},
		{
			name:     "No route table",
			build:    (&Support{ID: 1, Slug: "faq"}).AbsoluteURL,
			reverser: nil,
		},
		{
			name:     "Route not registered",
			build:    (&Support{ID: 1, Slug: "faq"}).AbsoluteURL,
			reverser: &MockReverser{Err: errors.New("no route")},
			called:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := tc.build(tc.reverser)

			assert.Empty(t, path)
			assert.ErrorIs(t, err, ErrRouteResolution)

			var rErr *RouteResolutionError
			assert.ErrorAs(t, err, &rErr)
			if m, ok := tc.reverser.(*MockReverser); ok {
				assert.Equal(t, tc.called, m.lastName != "", "route table lookup")
			}
		})
	}
}

func TestCheckPrice(t *testing.T) {
	testCases := []struct {
		price string
		ok    bool
	}{
		{price: "0", ok: true},
		{price: "19.99", ok: true},
		{price: "99999999.99", ok: true},
		{price: "-99999999.99", ok: true},
		{price: "100000000", ok: false},
		{price: "1.999", ok: false},
		{price: "1.990", ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.price, func(t *testing.T) {
			err := CheckPrice(decimal.RequireFromString(tc.price))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPriceOutOfRange)
			}
		})
	}
}

func TestImagePath(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "products/2024/03/05/router.png", ImagePath("router.png", at))
	assert.Equal(t, "products/2024/03/05/router.png", ImagePath("../../router.png", at), "directories are dropped")
}

func TestProductAvailability(t *testing.T) {
	p := NewProduct(1, "Router", decimal.NewFromInt(10))
	assert.Nil(t, p.Available)
	assert.True(t, p.IsAvailable())

	p.SetAvailable(false)
	assert.False(t, p.IsAvailable())
}
