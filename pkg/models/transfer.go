package models

const (
	OperationRefill   = "refill"
	OperationTransfer = "transfer"
)

// TransferRequest carries one transfer invocation. It lives for the duration
// of the request and is never persisted as-is.
type TransferRequest struct {
	Actor            User
	Product          Product
	Quantity         int
	OperationType    string
	FromLocationID   string
	ToLocationID     string
	AutoSelectSource bool
	Metadata         map[string]any
}

type TransferResult struct {
	Success             bool           `json:"success"`
	Message             string         `json:"message"`
	Movement            *StockMovement `json:"stock_movement"`
	QuantityTransferred int            `json:"quantity_transferred"`
	AutoSelected        bool           `json:"auto_selected"`
}
