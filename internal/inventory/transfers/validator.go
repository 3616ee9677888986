package transfers

import (
	"fmt"

	"stockroom/pkg/capabilities"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

// ValidateTransfer enforces the invariants a transfer must satisfy before any
// mutation is attempted. The capability gate runs first and a permission
// failure is reported alone; the data rules are batched into one
// ValidationError so the UI can show every problem at once.
//
// fromLocationID may be empty at this stage: some flows auto-select the
// source later. availableStock nil means "not known yet", which skips the
// upper bound check.
func ValidateTransfer(actor models.User, product models.Product, quantity int, fromLocationID string, availableStock *int, operationType string) error {
	var required capabilities.Capability
	switch operationType {
	case models.OperationRefill:
		required = capabilities.RefillBays
	case models.OperationTransfer:
		required = capabilities.CreateStockMovements
	default:
		return custom_error.NewValidationError("operation_type",
			fmt.Sprintf("unrecognized operation type %q", operationType))
	}

	if !actor.Can(required) {
		return &custom_error.PermissionError{Capability: required.String()}
	}

	validationErr := &custom_error.ValidationError{}

	if product.SKU == "" {
		validationErr.Add("sku", "product has no SKU")
	}
	if quantity < 1 {
		validationErr.Add("quantity", "quantity must be at least 1")
	}
	if availableStock != nil && quantity > *availableStock {
		validationErr.Add("quantity",
			fmt.Sprintf("quantity exceeds the %d available", *availableStock))
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}
