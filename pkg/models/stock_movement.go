package models

import "time"

const (
	MovementTypeBayRefill      = "bay_refill"
	MovementTypeManualTransfer = "manual_transfer"
)

// StockMovement is the append-only audit record of a completed transfer.
// Rows are created once and never updated or deleted.
type StockMovement struct {
	ID               int            `json:"id" db:"id"`
	ProductID        int            `json:"product_id" db:"product_id"`
	UserID           int            `json:"user_id" db:"user_id"`
	Quantity         int            `json:"quantity" db:"quantity"`
	Type             string         `json:"type" db:"type"`
	FromLocationID   string         `json:"from_location_id" db:"from_location_id"`
	FromLocationCode string         `json:"from_location_code" db:"from_location_code"`
	ToLocationID     string         `json:"to_location_id" db:"to_location_id"`
	ToLocationCode   string         `json:"to_location_code" db:"to_location_code"`
	Notes            *string        `json:"notes" db:"notes"`
	Metadata         map[string]any `json:"metadata" db:"-"`
	MovedAt          time.Time      `json:"moved_at" db:"moved_at"`
}
