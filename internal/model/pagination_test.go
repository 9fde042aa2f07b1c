package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		perPage  int
		wantLast int
		wantPage int
	}{
		{"empty result", 0, 1, 10, 1, 1},
		{"exact fit", 20, 2, 10, 2, 2},
		{"partial last page", 21, 3, 10, 3, 3},
		{"page below one", 5, 0, 10, 1, 1},
		{"default size", 25, 1, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage([]Category(nil), tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantLast, page.Pagination.LastPage)
			assert.Equal(t, tt.wantPage, page.Pagination.CurrentPage)
			assert.Equal(t, tt.total, page.Pagination.Total)
			assert.NotNil(t, page.Items)
		})
	}
}
