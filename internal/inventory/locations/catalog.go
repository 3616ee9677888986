package locations

import (
	"go.uber.org/zap"

	"stockroom/internal/linnworks"
	"stockroom/pkg/models"
)

// StockLevelFetcher is the slice of the inventory API the catalog needs.
type StockLevelFetcher interface {
	GetStockLocationsByProduct(sku string) ([]linnworks.StockItemLevel, error)
}

// Catalog fetches a product's stock position across all known locations.
type Catalog struct {
	client StockLevelFetcher
	log    *zap.Logger
}

func NewCatalog(client StockLevelFetcher, log *zap.Logger) *Catalog {
	return &Catalog{
		client: client,
		log:    log.Named("inventory"),
	}
}

// Fetch returns the normalized stock locations for a product, in upstream
// order. A boundary failure is logged and yields an empty slice instead of an
// error: downstream validation then fails cleanly on "no locations" rather
// than crashing the request.
func (c *Catalog) Fetch(product models.Product) []models.StockLocation {
	levels, err := c.client.GetStockLocationsByProduct(product.SKU)
	if err != nil {
		c.log.Warn("failed to fetch stock locations",
			zap.String("sku", product.SKU),
			zap.Error(err))
		return []models.StockLocation{}
	}

	stockLocations := make([]models.StockLocation, 0, len(levels))
	for _, level := range levels {
		stockLocations = append(stockLocations, models.StockLocation{
			ID:           level.Location.StockLocationID,
			Name:         level.Location.LocationName,
			StockLevel:   level.StockLevel,
			Available:    level.Available,
			Allocated:    level.Allocated,
			OnOrder:      level.OnOrder,
			MinimumLevel: level.MinimumLevel,
		})
	}

	return stockLocations
}
