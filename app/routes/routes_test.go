package routes

import (
	"testing"

	"github.com/mytheresa/go-shop/models"
	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	table := Default()

	testCases := []struct {
		name        string
		route       string
		args        []any
		expected    string
		expectedErr error
	}{
		{
			name:     "Product list by category",
			route:    models.RouteProductListByCategory,
			args:     []any{"electronics"},
			expected: "/electronics/",
		},
		{
			name:     "Product detail",
			route:    models.RouteProductDetail,
			args:     []any{uint(7), "usb-cable"},
			expected: "/7/usb-cable/",
		},
		{
			name:     "Namespaced name",
			route:    "shop:service_page",
			args:     []any{2, "setup"},
			expected: "/service/2/setup/",
		},
		{
			name:     "Support page",
			route:    models.RouteSupportPage,
			args:     []any{9, "returns"},
			expected: "/support/9/returns/",
		},
		{
			name:     "Arguments are escaped",
			route:    models.RouteProductListByCategory,
			args:     []any{"a b/c"},
			expected: "/a%20b%2Fc/",
		},
		{
			name:        "Unknown route",
			route:       "cart_detail",
			args:        []any{1},
			expectedErr: ErrUnknownRoute,
		},
		{
			name:        "Missing argument",
			route:       models.RouteProductDetail,
			args:        []any{7},
			expectedErr: ErrArgCount,
		},
		{
			name:        "Empty argument",
			route:       models.RouteSupportPage,
			args:        []any{1, ""},
			expectedErr: ErrEmptyArg,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := table.Reverse(tc.route, tc.args...)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, path)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, path)
		})
	}
}

func TestAdd(t *testing.T) {
	table := NewTable()

	assert.Error(t, table.Add("", "/x/"))
	assert.Error(t, table.Add("bad", "x/:id/"))
	assert.Error(t, table.Add("bad", "/x/:/"))

	assert.NoError(t, table.Add("shop:product_detail", "/p/:id/:slug/"))
	r, ok := table.Lookup(models.RouteProductDetail)
	assert.True(t, ok)
	assert.Equal(t, []string{"id", "slug"}, r.Params())

	assert.NoError(t, table.Add(models.RouteProductDetail, "/products/:id/:slug/"))
	path, err := table.Reverse(models.RouteProductDetail, 1, "x")
	assert.NoError(t, err)
	assert.Equal(t, "/products/1/x/", path, "later registration replaces earlier")
}

func TestModelsResolveThroughTable(t *testing.T) {
	table := Default()

	path, err := (&models.Category{ID: 1, Slug: "electronics"}).AbsoluteURL(table)
	assert.NoError(t, err)
	assert.Equal(t, "/electronics/", path)

	path, err = (&models.Product{ID: 7, Slug: "usb-cable"}).AbsoluteURL(table)
	assert.NoError(t, err)
	assert.Equal(t, "/7/usb-cable/", path)

	_, err = (&models.Service{ID: 1, Slug: "setup"}).AbsoluteURL(NewTable())
	assert.ErrorIs(t, err, models.ErrRouteResolution)
	assert.ErrorIs(t, err, ErrUnknownRoute)

	assert.Len(t, table.Routes(), 4)
	assert.Equal(t, models.RouteProductDetail, table.Routes()[0].Name)
}
