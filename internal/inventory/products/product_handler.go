package products

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockroom/pkg/barcode"
	"stockroom/pkg/capabilities"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
	"stockroom/pkg/security"
)

// LocationCatalog exposes a product's live stock positions for the lookup
// response the scanner shows after a scan.
type LocationCatalog interface {
	Fetch(product models.Product) []models.StockLocation
}

type ProductHandler struct {
	products *ProductRepository
	catalog  LocationCatalog
	log      *zap.Logger
}

func NewHandler(products *ProductRepository, catalog LocationCatalog, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		catalog:  catalog,
		log:      log,
	}
}

func RegisterRoutes(router *gin.Engine, handler *ProductHandler) {
	api := router.Group("/api", security.JWTMiddleware())

	api.GET("/products", handler.GetProducts)
	api.GET("/products/lookup/:code", handler.LookupProduct)
	api.POST("/products", security.RequireCapability(capabilities.ManageProducts), handler.CreateProduct)
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.products.GetProducts()
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// LookupProduct resolves a scanned code to a product, trying the barcode
// first and falling back to a SKU match, and returns the product together
// with its current stock locations.
func (h *ProductHandler) LookupProduct(c *gin.Context) {
	code := barcode.Normalize(c.Param("code"))
	if code == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Empty code"})
		return
	}

	product, err := h.products.GetProductByBarcode(code)
	if err == nil && product == nil {
		product, err = h.products.GetProductBySKU(code)
	}
	if err != nil {
		h.log.Error("product lookup failed", zap.String("code", code), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to look up product"})
		return
	}
	if product == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No product matches the scanned code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":         product,
		"stock_locations": h.catalog.Fetch(*product),
	})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	product, err := h.products.PersistProduct(req)
	if err != nil {
		var uniqueErr *custom_error.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "A product with this SKU or barcode already exists"})
			return
		}
		h.log.Error("failed to create product", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}
