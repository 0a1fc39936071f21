// Copyright (c) 2026 Campus. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozgekara/campus/pkg/pagination"
)

/*
TestNewMeta checks the total-pages ceiling arithmetic.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalCount int
		wantPages  int
	}{
		{"fifteen_records_limit_ten", 1, 10, 15, 2},
		{"fifteen_records_limit_five", 1, 5, 15, 3},
		{"exact_division", 2, 10, 20, 2},
		{"empty_set", 1, 10, 0, 0},
		{"single_record", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.totalCount)

			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.totalCount, meta.TotalCount)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}

/*
TestParams_Offset verifies the page→offset mapping.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestFromRequest covers defaulting and clamping of the query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit_values", "page=3&limit=25", 3, 25},
		{"negative_page", "page=-1", 1, 10},
		{"zero_limit", "limit=0", 1, 10},
		{"limit_above_max", "limit=1000", 1, 100},
		{"limit_at_max", "limit=100", 1, 100},
		{"non_numeric", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/?"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
