package transfers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockroom/pkg/security"

	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

type UserGetter interface {
	GetUser(id int) (*models.User, error)
}

type ProductFinder interface {
	GetProductBySKU(sku string) (*models.Product, error)
}

type TransferHandler struct {
	service   *TransferService
	movements *StockMovementRepository
	users     UserGetter
	products  ProductFinder
	log       *zap.Logger
}

func NewHandler(service *TransferService, movements *StockMovementRepository, users UserGetter, products ProductFinder, log *zap.Logger) *TransferHandler {
	return &TransferHandler{
		service:   service,
		movements: movements,
		users:     users,
		products:  products,
		log:       log,
	}
}

func RegisterRoutes(router *gin.Engine, handler *TransferHandler) {
	api := router.Group("/api", security.JWTMiddleware())

	api.POST("/transfers/refill", handler.CreateRefill)
	api.POST("/transfers", handler.CreateTransfer)
	api.GET("/movements", handler.GetMovements)
	api.GET("/products/:id/movements", handler.GetProductMovements)
}

type transferRequestBody struct {
	SKU              string         `json:"sku" binding:"required"`
	Quantity         int            `json:"quantity" binding:"required,gte=1"`
	FromLocationID   string         `json:"from_location_id"`
	ToLocationID     string         `json:"to_location_id"`
	AutoSelectSource *bool          `json:"auto_select_source"`
	Metadata         map[string]any `json:"metadata"`
}

// CreateRefill is the scanner's "refill this bay" action: source defaults to
// auto-selection, destination defaults to the configured bay location.
func (h *TransferHandler) CreateRefill(c *gin.Context) {
	h.runTransfer(c, models.OperationRefill, true)
}

func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	h.runTransfer(c, models.OperationTransfer, false)
}

func (h *TransferHandler) runTransfer(c *gin.Context, operationType string, autoSelectDefault bool) {
	var body transferRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	product, err := h.products.GetProductBySKU(body.SKU)
	if err != nil || product == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown product SKU"})
		return
	}

	autoSelect := autoSelectDefault
	if body.AutoSelectSource != nil {
		autoSelect = *body.AutoSelectSource
	}

	result, err := h.service.ExecuteTransfer(models.TransferRequest{
		Actor:            *actor,
		Product:          *product,
		Quantity:         body.Quantity,
		OperationType:    operationType,
		FromLocationID:   body.FromLocationID,
		ToLocationID:     body.ToLocationID,
		AutoSelectSource: autoSelect,
		Metadata:         body.Metadata,
	})
	if err != nil {
		h.respondTransferError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *TransferHandler) GetMovements(c *gin.Context) {
	limit := uint(100)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = uint(parsed)
	}

	movements, err := h.movements.GetMovements(limit)
	if err != nil {
		h.log.Error("failed to list stock movements", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch movements"})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (h *TransferHandler) GetProductMovements(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	movements, err := h.movements.GetMovementsByProduct(productID)
	if err != nil {
		h.log.Error("failed to list product movements",
			zap.Int("product_id", productID),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch movements"})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (h *TransferHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, err := security.GetUserIDFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return nil, false
	}

	user, err := h.users.GetUser(userID)
	if err != nil || user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
		return nil, false
	}

	return user, true
}

// respondTransferError maps the error taxonomy onto HTTP statuses: permission
// failures are 403, validation failures are 422 with per-field messages, and
// a consistency failure is a 500 the operator has to follow up on.
func (h *TransferHandler) respondTransferError(c *gin.Context, err error) {
	var permissionErr *custom_error.PermissionError
	var validationErr *custom_error.ValidationError
	var consistencyErr *custom_error.ConsistencyError

	switch {
	case errors.As(err, &permissionErr):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": permissionErr.Error()})
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Transfer validation failed",
			"fields": validationErr.Fields(),
		})
	case errors.As(err, &consistencyErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Transfer was confirmed by the inventory system but could not be recorded. Contact an administrator before retrying.",
		})
	default:
		h.log.Error("transfer failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to process transfer"})
	}
}
