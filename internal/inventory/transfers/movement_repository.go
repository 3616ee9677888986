package transfers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"stockroom/internal/repository"
	"stockroom/pkg/models"
)

// movementSource tags every movement row with the system that wrote it.
const movementSource = "stockroom-api"

type StockMovementRepository struct {
	repository *repository.Repository
}

func NewMovementRepository(r *repository.Repository) *StockMovementRepository {
	return &StockMovementRepository{repository: r}
}

// RecordMovement writes the immutable audit record of a completed transfer.
// Caller metadata is merged with fixed bookkeeping fields and moved_at is
// stamped here. A failed insert propagates: this is the system-of-record
// write and must never fail silently.
func (r *StockMovementRepository) RecordMovement(
	tx *goqu.TxDatabase,
	product models.Product,
	actor models.User,
	quantity int,
	movementType string,
	fromLocationID, fromLocationCode string,
	toLocationID, toLocationCode string,
	notes *string,
	metadata map[string]any,
) (*models.StockMovement, error) {
	merged := make(map[string]any, len(metadata)+4)
	for k, v := range metadata {
		merged[k] = v
	}
	merged["source"] = movementSource
	merged["performed_by"] = actor.Fullname
	merged["product_sku"] = product.SKU
	merged["product_name"] = product.Name

	metadataJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal movement metadata: %w", err)
	}

	movement := models.StockMovement{
		ProductID:        product.ID,
		UserID:           actor.ID,
		Quantity:         quantity,
		Type:             movementType,
		FromLocationID:   fromLocationID,
		FromLocationCode: fromLocationCode,
		ToLocationID:     toLocationID,
		ToLocationCode:   toLocationCode,
		Notes:            notes,
		Metadata:         merged,
		MovedAt:          time.Now(),
	}

	query := tx.Insert("stock_movements").
		Rows(goqu.Record{
			"product_id":         movement.ProductID,
			"user_id":            movement.UserID,
			"quantity":           movement.Quantity,
			"type":               movement.Type,
			"from_location_id":   movement.FromLocationID,
			"from_location_code": movement.FromLocationCode,
			"to_location_id":     movement.ToLocationID,
			"to_location_code":   movement.ToLocationCode,
			"notes":              movement.Notes,
			"metadata":           metadataJSON,
			"moved_at":           movement.MovedAt,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&movement.ID); err != nil {
		return nil, fmt.Errorf("failed to insert stock movement record: %w", err)
	}

	return &movement, nil
}

// RecordBayRefill records a bay_refill movement, generating the notes text
// when the caller omits it.
func (r *StockMovementRepository) RecordBayRefill(
	tx *goqu.TxDatabase,
	product models.Product,
	actor models.User,
	quantity int,
	fromLocationID, fromLocationCode string,
	toLocationID, toLocationCode string,
	notes *string,
	metadata map[string]any,
) (*models.StockMovement, error) {
	if notes == nil {
		generated := fmt.Sprintf("Bay refill from %s to %s",
			locationLabel(fromLocationID, fromLocationCode),
			locationLabel(toLocationID, toLocationCode))
		notes = &generated
	}

	return r.RecordMovement(tx, product, actor, quantity, models.MovementTypeBayRefill,
		fromLocationID, fromLocationCode, toLocationID, toLocationCode, notes, metadata)
}

// RecordManualTransfer records a manual_transfer movement, generating the
// notes text when the caller omits it.
func (r *StockMovementRepository) RecordManualTransfer(
	tx *goqu.TxDatabase,
	product models.Product,
	actor models.User,
	quantity int,
	fromLocationID, fromLocationCode string,
	toLocationID, toLocationCode string,
	notes *string,
	metadata map[string]any,
) (*models.StockMovement, error) {
	if notes == nil {
		generated := fmt.Sprintf("Manual transfer from %s to %s",
			locationLabel(fromLocationID, fromLocationCode),
			locationLabel(toLocationID, toLocationCode))
		notes = &generated
	}

	return r.RecordMovement(tx, product, actor, quantity, models.MovementTypeManualTransfer,
		fromLocationID, fromLocationCode, toLocationID, toLocationCode, notes, metadata)
}

func locationLabel(id, code string) string {
	if code != "" {
		return code
	}
	return id
}

// GetMovements returns the newest movement rows, most recent first.
func (r *StockMovementRepository) GetMovements(limit uint) ([]models.StockMovement, error) {
	query := r.movementQuery().Limit(limit)
	return r.scanMovements(query)
}

// GetMovementsByProduct returns a product's movement history, most recent
// first.
func (r *StockMovementRepository) GetMovementsByProduct(productID int) ([]models.StockMovement, error) {
	query := r.movementQuery().Where(goqu.Ex{"product_id": productID})
	return r.scanMovements(query)
}

func (r *StockMovementRepository) movementQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select(
			"id", "product_id", "user_id", "quantity", "type",
			"from_location_id", "from_location_code",
			"to_location_id", "to_location_code",
			"notes", "metadata", "moved_at",
		).
		From("stock_movements").
		Order(goqu.I("moved_at").Desc())
}

func (r *StockMovementRepository) scanMovements(query *goqu.SelectDataset) ([]models.StockMovement, error) {
	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement
	for rows.Next() {
		var movement models.StockMovement
		var metadataRaw []byte

		if err := rows.Scan(
			&movement.ID,
			&movement.ProductID,
			&movement.UserID,
			&movement.Quantity,
			&movement.Type,
			&movement.FromLocationID,
			&movement.FromLocationCode,
			&movement.ToLocationID,
			&movement.ToLocationCode,
			&movement.Notes,
			&metadataRaw,
			&movement.MovedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}

		if len(metadataRaw) > 0 {
			if err := json.Unmarshal(metadataRaw, &movement.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode movement metadata: %w", err)
			}
		}

		movements = append(movements, movement)
	}

	return movements, rows.Err()
}
