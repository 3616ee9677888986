package linnworks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stockroom/internal/config"
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(cfg config.LinnworksConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// GetStockLocationsByProduct returns the raw per-location stock levels for a
// SKU, in the order the API reports them.
func (c *Client) GetStockLocationsByProduct(sku string) ([]StockItemLevel, error) {
	reqURL := fmt.Sprintf("%s/api/Stock/GetStockLevelsBySKU?sku=%s", c.baseURL, url.QueryEscape(sku))

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("inventory API returned %s", resp.Status)
	}

	var response stockLevelResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	return response.StockLevels, nil
}

// TransferStockToDefaultLocation moves quantity of a SKU from the given
// location into the account's default location.
func (c *Client) TransferStockToDefaultLocation(sku string, fromLocationID string, quantity int) (*TransferResponse, error) {
	body, err := json.Marshal(transferRequest{
		SKU:            sku,
		FromLocationID: fromLocationID,
		Quantity:       quantity,
	})
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/Stock/TransferToDefaultLocation", c.baseURL)

	req, err := http.NewRequest("POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("inventory API returned %s", resp.Status)
	}

	var response TransferResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	return &response, nil
}
