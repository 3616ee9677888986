package transfers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockroom/pkg/capabilities"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

func operator() models.User {
	return models.User{ID: 7, Username: "jo", Fullname: "Jo Operator", Role: capabilities.RoleOperator}
}

func viewer() models.User {
	return models.User{ID: 8, Username: "vi", Fullname: "Vi Viewer", Role: capabilities.RoleViewer}
}

func testProduct() models.Product {
	return models.Product{ID: 1, SKU: "ABC-123", Name: "Widget"}
}

func intPtr(v int) *int {
	return &v
}

func TestValidateTransferHappyPath(t *testing.T) {
	err := ValidateTransfer(operator(), testProduct(), 5, "loc-1", intPtr(10), models.OperationRefill)
	assert.NoError(t, err)

	err = ValidateTransfer(operator(), testProduct(), 5, "loc-1", intPtr(10), models.OperationTransfer)
	assert.NoError(t, err)
}

func TestValidateTransferPermissionGatePrecedesDataChecks(t *testing.T) {
	// quantity and SKU are both invalid, the permission failure still wins
	err := ValidateTransfer(viewer(), models.Product{}, 0, "", nil, models.OperationRefill)

	var permissionErr *custom_error.PermissionError
	assert.ErrorAs(t, err, &permissionErr)
	assert.Equal(t, capabilities.RefillBays.String(), permissionErr.Capability)
}

func TestValidateTransferUnknownOperationType(t *testing.T) {
	err := ValidateTransfer(operator(), testProduct(), 5, "loc-1", nil, "teleport")

	var validationErr *custom_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields()["operation_type"], "teleport")
}

func TestValidateTransferQuantityBounds(t *testing.T) {
	var validationErr *custom_error.ValidationError

	err := ValidateTransfer(operator(), testProduct(), 0, "loc-1", nil, models.OperationRefill)
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quantity must be at least 1", validationErr.Fields()["quantity"])

	err = ValidateTransfer(operator(), testProduct(), 15, "loc-1", intPtr(10), models.OperationRefill)
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields()["quantity"], "10")

	// no known stock bound, any positive quantity passes
	err = ValidateTransfer(operator(), testProduct(), 10000, "loc-1", nil, models.OperationRefill)
	assert.NoError(t, err)
}

func TestValidateTransferMissingSKU(t *testing.T) {
	err := ValidateTransfer(operator(), models.Product{ID: 1, Name: "Widget"}, 5, "loc-1", nil, models.OperationRefill)

	var validationErr *custom_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "product has no SKU", validationErr.Fields()["sku"])
}

func TestValidateTransferBatchesDataErrors(t *testing.T) {
	err := ValidateTransfer(operator(), models.Product{}, 0, "", nil, models.OperationTransfer)

	var validationErr *custom_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, validationErr.Fields(), "sku")
	assert.Contains(t, validationErr.Fields(), "quantity")
}

func TestValidateTransferAllowsEmptySourceLocation(t *testing.T) {
	// the source may be auto-selected later in the flow
	err := ValidateTransfer(operator(), testProduct(), 5, "", nil, models.OperationTransfer)
	assert.NoError(t, err)
}
