package locations

import "stockroom/pkg/models"

// SelectSource picks the best source location for a transfer in a single
// deterministic pass:
//
//  1. drop the destination and anything with no stock
//  2. a preferred location that can cover minimumQuantity wins outright
//  3. a lone remaining candidate is returned even below minimumQuantity
//     (the caller clamps the quantity afterwards)
//  4. otherwise the highest stock level wins, first occurrence on ties
//
// Returns nil when no valid source exists.
func SelectSource(locations []models.StockLocation, excludeLocationID, preferredLocationID string, minimumQuantity int) *models.StockLocation {
	candidates := make([]models.StockLocation, 0, len(locations))
	for _, loc := range locations {
		if loc.ID == excludeLocationID || loc.StockLevel <= 0 {
			continue
		}
		candidates = append(candidates, loc)
	}

	if len(candidates) == 0 {
		return nil
	}

	if preferredLocationID != "" {
		for i := range candidates {
			if candidates[i].ID == preferredLocationID && candidates[i].StockLevel >= minimumQuantity {
				return &candidates[i]
			}
		}
	}

	if len(candidates) == 1 {
		return &candidates[0]
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].StockLevel > candidates[best].StockLevel {
			best = i
		}
	}

	return &candidates[best]
}

// MaxTransferQuantity clamps a requested quantity to what the location
// actually holds. A nil location counts as empty.
func MaxTransferQuantity(location *models.StockLocation, requestedQuantity int) int {
	stock := 0
	if location != nil && location.StockLevel > 0 {
		stock = location.StockLevel
	}

	if requestedQuantity < stock {
		return requestedQuantity
	}
	return stock
}
