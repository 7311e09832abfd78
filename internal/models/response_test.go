package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name          string
		page, size    int
		total         int
		wantTotalPage int
	}{
		{name: "empty result set", page: 1, size: 10, total: 0, wantTotalPage: 0},
		{name: "single contact", page: 1, size: 10, total: 1, wantTotalPage: 1},
		{name: "exact multiple", page: 1, size: 10, total: 20, wantTotalPage: 2},
		{name: "rounds up", page: 1, size: 10, total: 21, wantTotalPage: 3},
		{name: "page beyond end keeps current_page", page: 2, size: 1, total: 1, wantTotalPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paging := NewPaging(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.page, paging.CurrentPage)
			assert.Equal(t, tt.wantTotalPage, paging.TotalPage)
			assert.Equal(t, tt.size, paging.Size)
		})
	}
}
