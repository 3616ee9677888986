package transfers

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockroom/internal/config"
	"stockroom/internal/inventory/locations"
	"stockroom/internal/linnworks"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	Run(fn func(tx *goqu.TxDatabase) error) error
}

// LocationCatalog provides the current stock positions for a product.
type LocationCatalog interface {
	Fetch(product models.Product) []models.StockLocation
}

// InventoryTransferClient performs the actual stock movement in the external
// inventory system.
type InventoryTransferClient interface {
	TransferStockToDefaultLocation(sku string, fromLocationID string, quantity int) (*linnworks.TransferResponse, error)
}

// MovementRecorder persists the audit record of a completed transfer.
type MovementRecorder interface {
	RecordBayRefill(tx *goqu.TxDatabase, product models.Product, actor models.User, quantity int,
		fromLocationID, fromLocationCode, toLocationID, toLocationCode string,
		notes *string, metadata map[string]any) (*models.StockMovement, error)
	RecordManualTransfer(tx *goqu.TxDatabase, product models.Product, actor models.User, quantity int,
		fromLocationID, fromLocationCode, toLocationID, toLocationCode string,
		notes *string, metadata map[string]any) (*models.StockMovement, error)
}

// TransferService orchestrates one stock transfer: source selection,
// validation, the external inventory call, and the local movement record.
type TransferService struct {
	tx       TxRunner
	recorder MovementRecorder
	catalog  LocationCatalog
	client   InventoryTransferClient
	cfg      config.TransferConfig
	log      *zap.Logger
}

func NewTransferService(
	tx TxRunner,
	recorder MovementRecorder,
	catalog LocationCatalog,
	client InventoryTransferClient,
	cfg config.TransferConfig,
	log *zap.Logger,
) *TransferService {
	return &TransferService{
		tx:       tx,
		recorder: recorder,
		catalog:  catalog,
		client:   client,
		cfg:      cfg,
		log:      log,
	}
}

// ExecuteTransfer runs the whole transfer sequence. The local movement insert
// happens in one transaction together with the external call; the external
// call itself is an irrevocable side effect, so a persistence failure after
// external success surfaces as a ConsistencyError for manual reconciliation
// instead of being retried.
func (s *TransferService) ExecuteTransfer(req models.TransferRequest) (*models.TransferResult, error) {
	toLocationID := req.ToLocationID
	if toLocationID == "" {
		toLocationID = s.cfg.DefaultLocationID
	}

	stockLocations := s.catalog.Fetch(req.Product)
	if len(stockLocations) == 0 {
		return nil, custom_error.NewValidationError("product",
			"no stock locations found for this product")
	}

	source, err := s.resolveSource(req, stockLocations, toLocationID)
	if err != nil {
		return nil, err
	}

	// Silently reduce the quantity when the source holds less than requested;
	// the result reports the clamped value.
	quantity := locations.MaxTransferQuantity(source, req.Quantity)

	available := source.StockLevel
	if err := ValidateTransfer(req.Actor, req.Product, quantity, source.ID, &available, req.OperationType); err != nil {
		return nil, err
	}

	// The only movement the inventory system exposes is "transfer into the
	// default location". Anything else is a known limitation, not a bug.
	if toLocationID != s.cfg.DefaultLocationID {
		return nil, custom_error.NewValidationError("to_location_id",
			"transfers between arbitrary locations are not implemented yet")
	}

	toLocationCode := locationName(stockLocations, toLocationID)

	metadata := make(map[string]any, len(req.Metadata)+3)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["transaction_id"] = uuid.New().String()
	metadata["auto_selected"] = req.AutoSelectSource
	metadata["requested_quantity"] = req.Quantity

	var movement *models.StockMovement

	err = s.tx.Run(func(tx *goqu.TxDatabase) error {
		response, err := s.client.TransferStockToDefaultLocation(req.Product.SKU, source.ID, quantity)
		if err != nil {
			return custom_error.NewValidationError("transfer",
				fmt.Sprintf("inventory system call failed: %v", err))
		}
		if !response.Success {
			message := response.Message
			if message == "" {
				message = "inventory system rejected the transfer"
			}
			return custom_error.NewValidationError("transfer", message)
		}

		// The external system has already moved the stock. From here on a
		// failure means the two systems diverge.
		var recordErr error
		switch req.OperationType {
		case models.OperationRefill:
			movement, recordErr = s.recorder.RecordBayRefill(tx, req.Product, req.Actor, quantity,
				source.ID, source.Name, toLocationID, toLocationCode, nil, metadata)
		default:
			movement, recordErr = s.recorder.RecordManualTransfer(tx, req.Product, req.Actor, quantity,
				source.ID, source.Name, toLocationID, toLocationCode, nil, metadata)
		}
		if recordErr != nil {
			return &custom_error.ConsistencyError{
				Message: fmt.Sprintf("inventory system confirmed moving %d x %s from %s but the movement record failed",
					quantity, req.Product.SKU, source.Name),
				Err: recordErr,
			}
		}

		return nil
	})

	if err != nil {
		var consistencyErr *custom_error.ConsistencyError
		if errors.As(err, &consistencyErr) {
			s.log.Error("stock movement record lost after confirmed external transfer",
				zap.String("sku", req.Product.SKU),
				zap.String("from_location_id", source.ID),
				zap.String("to_location_id", toLocationID),
				zap.Int("quantity", quantity),
				zap.Error(consistencyErr))
		}
		return nil, err
	}

	message := fmt.Sprintf("Moved %d x %s from %s to %s",
		quantity, req.Product.SKU, source.Name, displayLabel(toLocationCode, toLocationID))

	return &models.TransferResult{
		Success:             true,
		Message:             message,
		Movement:            movement,
		QuantityTransferred: quantity,
		AutoSelected:        req.AutoSelectSource,
	}, nil
}

// resolveSource picks the source location, either by the selection heuristic
// (excluding the destination, preferring the caller's hint or the configured
// floor location) or by looking up the explicitly requested location.
func (s *TransferService) resolveSource(req models.TransferRequest, stockLocations []models.StockLocation, toLocationID string) (*models.StockLocation, error) {
	if req.AutoSelectSource {
		preferred := req.FromLocationID
		if preferred == "" {
			preferred = s.cfg.FloorLocationID
		}

		source := locations.SelectSource(stockLocations, toLocationID, preferred, req.Quantity)
		if source == nil {
			return nil, custom_error.NewValidationError("from_location_id",
				"no suitable source location found")
		}
		return source, nil
	}

	for i := range stockLocations {
		if stockLocations[i].ID == req.FromLocationID && req.FromLocationID != "" {
			return &stockLocations[i], nil
		}
	}

	return nil, custom_error.NewValidationError("from_location_id",
		"source location does not hold this product")
}

func locationName(stockLocations []models.StockLocation, id string) string {
	for _, loc := range stockLocations {
		if loc.ID == id {
			return loc.Name
		}
	}
	return ""
}

func displayLabel(code, id string) string {
	if code != "" {
		return code
	}
	return id
}
