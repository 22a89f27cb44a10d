package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int64
		code     string
	}{
		{name: "Success", value: "42", expected: 42},
		{name: "Failure - Missing", value: "", code: appErrors.ErrCodeBadRequest},
		{name: "Failure - Not A Number", value: "abc", code: appErrors.ErrCodeNotFound},
		{name: "Failure - Zero", value: "0", code: appErrors.ErrCodeNotFound},
		{name: "Failure - Negative", value: "-3", code: appErrors.ErrCodeNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/line/x", nil)
			req.SetPathValue("id", tc.value)

			id, err := utils.ParseID(req, "id")

			if tc.code == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, id)
				return
			}

			require.Error(t, err)
			assert.True(t, appErrors.HasCode(err, tc.code))
		})
	}
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected utils.PageParams
	}{
		{name: "Defaults", query: "", expected: utils.PageParams{Offset: 0, Limit: 10}},
		{name: "Explicit", query: "?offset=20&limit=5", expected: utils.PageParams{Offset: 20, Limit: 5}},
		{name: "Clamped Limit", query: "?limit=500", expected: utils.PageParams{Offset: 0, Limit: 100}},
		{name: "Invalid Values", query: "?offset=-1&limit=abc", expected: utils.PageParams{Offset: 0, Limit: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders"+tc.query, nil)

			assert.Equal(t, tc.expected, utils.ParsePageParams(req, 10, 100))
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Run("First Page With Next", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?limit=10", nil)

		page := utils.Paginate(req, []int{1, 2}, 25, utils.PageParams{Offset: 0, Limit: 10})

		assert.Equal(t, 25, page.Total)
		assert.Equal(t, "/api/v1/orders?limit=10&offset=0", page.Links.Self.Href)
		assert.Nil(t, page.Links.Prev)
		require.NotNil(t, page.Links.Next)
		assert.Equal(t, "/api/v1/orders?limit=10&offset=10", page.Links.Next.Href)
	})

	t.Run("Last Page With Prev", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)

		page := utils.Paginate(req, []int{}, 25, utils.PageParams{Offset: 20, Limit: 10})

		require.NotNil(t, page.Links.Prev)
		assert.Equal(t, "/api/v1/orders?limit=10&offset=10", page.Links.Prev.Href)
		assert.Nil(t, page.Links.Next)
	})

	t.Run("Prev Does Not Go Below Zero", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)

		page := utils.Paginate(req, []int{}, 25, utils.PageParams{Offset: 5, Limit: 10})

		require.NotNil(t, page.Links.Prev)
		assert.Equal(t, "/api/v1/orders?limit=10&offset=0", page.Links.Prev.Href)
	})
}
