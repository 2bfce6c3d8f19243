package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		page, size         int
		wantOffset, wantLn int
	}{
		{"defaults", 0, 0, 0, DefaultPageSize},
		{"second page", 2, 5, 5, 5},
		{"oversized", 1, 1000, 0, DefaultPageSize},
		{"negative page", -3, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			off, lim := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, off)
			assert.Equal(t, tt.wantLn, lim)
		})
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Slice(items, 2, 2))
	assert.Equal(t, []int{5}, Slice(items, 4, 10))
	assert.Equal(t, []int{}, Slice(items, 9, 2))
}
