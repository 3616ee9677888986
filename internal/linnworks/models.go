package linnworks

// StockItemLevel is one raw per-location stock record as returned by the
// inventory API. Numeric fields missing from the payload decode to zero.
type StockItemLevel struct {
	Location     StockLocation `json:"Location"`
	StockLevel   int           `json:"StockLevel"`
	Available    int           `json:"Available"`
	Allocated    int           `json:"Allocated"`
	OnOrder      int           `json:"OnOrder"`
	MinimumLevel int           `json:"MinimumLevel"`
}

type StockLocation struct {
	StockLocationID string `json:"StockLocationId"`
	LocationName    string `json:"LocationName"`
}

type stockLevelResponse struct {
	StockLevels []StockItemLevel `json:"StockLevels"`
}

type transferRequest struct {
	SKU            string `json:"SKU"`
	FromLocationID string `json:"FromLocationId"`
	Quantity       int    `json:"Quantity"`
}

// TransferResponse reports the outcome of a transfer operation. Success false
// with a message is an API-level rejection, not a transport error.
type TransferResponse struct {
	Success bool   `json:"Success"`
	Message string `json:"Message"`
}
