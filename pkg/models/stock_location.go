package models

// StockLocation is a snapshot of one location's stock position for a single
// product, as reported by the external inventory system. It is rebuilt on
// every catalog fetch and never persisted.
type StockLocation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StockLevel   int    `json:"stock_level"`
	Available    int    `json:"available"`
	Allocated    int    `json:"allocated"`
	OnOrder      int    `json:"on_order"`
	MinimumLevel int    `json:"minimum_level"`
}
