package linnworks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockroom/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.LinnworksConfig{
		BaseURL: serverURL,
		Token:   "test-token",
	})
}

func TestGetStockLocationsByProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Stock/GetStockLevelsBySKU", r.URL.Path)
		assert.Equal(t, "ABC-123", r.URL.Query().Get("sku"))
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(stockLevelResponse{
			StockLevels: []StockItemLevel{
				{
					Location:   StockLocation{StockLocationID: "loc-1", LocationName: "Warehouse"},
					StockLevel: 40,
					Available:  35,
				},
				{
					// partial record, numeric fields absent
					Location: StockLocation{StockLocationID: "loc-2", LocationName: "Floor"},
				},
			},
		})
	}))
	defer server.Close()

	levels, err := newTestClient(server.URL).GetStockLocationsByProduct("ABC-123")

	assert.NoError(t, err)
	assert.Len(t, levels, 2)
	assert.Equal(t, "loc-1", levels[0].Location.StockLocationID)
	assert.Equal(t, 40, levels[0].StockLevel)
	assert.Equal(t, 0, levels[1].StockLevel)
	assert.Equal(t, 0, levels[1].Available)
}

func TestGetStockLocationsByProductServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	levels, err := newTestClient(server.URL).GetStockLocationsByProduct("ABC-123")

	assert.Error(t, err)
	assert.Nil(t, levels)
}

func TestTransferStockToDefaultLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/Stock/TransferToDefaultLocation", r.URL.Path)

		var req transferRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ABC-123", req.SKU)
		assert.Equal(t, "loc-2", req.FromLocationID)
		assert.Equal(t, 5, req.Quantity)

		json.NewEncoder(w).Encode(TransferResponse{Success: true})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).TransferStockToDefaultLocation("ABC-123", "loc-2", 5)

	assert.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTransferStockToDefaultLocationRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TransferResponse{Success: false, Message: "insufficient stock at source"})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).TransferStockToDefaultLocation("ABC-123", "loc-2", 5)

	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "insufficient stock at source", resp.Message)
}
