package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

func product(id string, width, depth float64) models.Product {
	return models.Product{
		ID:         id,
		Name:       "Test " + id,
		Dimensions: models.ProductDimensions{Width: width, Height: 80, Depth: depth},
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterByFit(t *testing.T) {
	// 2m x 4m floor: limits are 1.6m wide and 3.2m deep
	room := NewRoomDimensions(Extents{Width: 2, Height: 2.5, Length: 4}, units.Meters)

	products := []models.Product{
		product("fits", 120, 60),
		product("too-wide", 170, 60),
		product("too-deep", 100, 330),
		product("tight", 150, 300),
	}

	tests := []struct {
		name string
		dims models.RoomDimensions
		want []string
	}{
		{
			name: "metric room",
			dims: room,
			want: []string{"fits", "tight"},
		},
		{
			name: "imperial room compares in meters",
			dims: NewRoomDimensions(Extents{Width: 2, Height: 2.5, Length: 4}, units.Feet),
			want: []string{"fits", "tight"},
		},
		{
			name: "tiny room excludes everything",
			dims: NewRoomDimensions(Extents{Width: 0.5, Height: 2, Length: 0.5}, units.Meters),
			want: []string{},
		},
		{
			name: "unmeasured room keeps everything",
			dims: models.RoomDimensions{Units: units.Meters},
			want: []string{"fits", "too-wide", "too-deep", "tight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(FilterByFit(products, tt.dims))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterByFit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(product("a", 100, 50), 1.0, 0.5))
	assert.False(t, Fits(product("b", 101, 50), 1.0, 0.5))
	assert.False(t, Fits(product("c", 100, 51), 1.0, 0.5))
}
