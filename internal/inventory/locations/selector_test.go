package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockroom/pkg/models"
)

func threeLocations() []models.StockLocation {
	return []models.StockLocation{
		{ID: "main", Name: "Main Bay", StockLevel: 25},
		{ID: "floor", Name: "Shop Floor", StockLevel: 50},
		{ID: "warehouse", Name: "Warehouse", StockLevel: 100},
	}
}

func TestSelectSourceExcludesDestination(t *testing.T) {
	selected := SelectSource(threeLocations(), "warehouse", "", 10)

	assert.NotNil(t, selected)
	assert.NotEqual(t, "warehouse", selected.ID)
}

func TestSelectSourceSkipsZeroStock(t *testing.T) {
	locations := []models.StockLocation{
		{ID: "empty", StockLevel: 0},
		{ID: "negative", StockLevel: -3},
		{ID: "floor", StockLevel: 5},
	}

	selected := SelectSource(locations, "main", "", 10)

	assert.NotNil(t, selected)
	assert.Equal(t, "floor", selected.ID)
}

func TestSelectSourcePreferredShortCircuit(t *testing.T) {
	// floor wins even though warehouse holds more stock
	selected := SelectSource(threeLocations(), "main", "floor", 10)

	assert.NotNil(t, selected)
	assert.Equal(t, "floor", selected.ID)
}

func TestSelectSourcePreferredBelowMinimumFallsThrough(t *testing.T) {
	selected := SelectSource(threeLocations(), "main", "floor", 60)

	assert.NotNil(t, selected)
	assert.Equal(t, "warehouse", selected.ID)
}

func TestSelectSourceMaxStockFallback(t *testing.T) {
	selected := SelectSource(threeLocations(), "main", "", 10)

	assert.NotNil(t, selected)
	assert.Equal(t, "warehouse", selected.ID)
}

func TestSelectSourceMaxStockTieBreaksOnFirst(t *testing.T) {
	locations := []models.StockLocation{
		{ID: "a", StockLevel: 70},
		{ID: "b", StockLevel: 70},
		{ID: "c", StockLevel: 30},
	}

	selected := SelectSource(locations, "", "", 10)

	assert.NotNil(t, selected)
	assert.Equal(t, "a", selected.ID)
}

func TestSelectSourceSingleCandidateBypassesMinimum(t *testing.T) {
	locations := []models.StockLocation{
		{ID: "main", StockLevel: 25},
		{ID: "floor", StockLevel: 3},
	}

	selected := SelectSource(locations, "main", "", 10)

	assert.NotNil(t, selected)
	assert.Equal(t, "floor", selected.ID)
}

func TestSelectSourceNoCandidates(t *testing.T) {
	assert.Nil(t, SelectSource(nil, "main", "", 1))
	assert.Nil(t, SelectSource([]models.StockLocation{}, "main", "", 1))

	// all excluded or out of stock
	locations := []models.StockLocation{
		{ID: "main", StockLevel: 25},
		{ID: "floor", StockLevel: 0},
	}
	assert.Nil(t, SelectSource(locations, "main", "", 1))
}

func TestMaxTransferQuantity(t *testing.T) {
	tests := []struct {
		name      string
		location  *models.StockLocation
		requested int
		expected  int
	}{
		{
			name:      "clamped to stock level",
			location:  &models.StockLocation{StockLevel: 30},
			requested: 50,
			expected:  30,
		},
		{
			name:      "request below stock",
			location:  &models.StockLocation{StockLevel: 30},
			requested: 20,
			expected:  20,
		},
		{
			name:      "empty location",
			location:  &models.StockLocation{},
			requested: 10,
			expected:  0,
		},
		{
			name:      "nil location",
			location:  nil,
			requested: 10,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxTransferQuantity(tt.location, tt.requested))
		})
	}
}
