package models

import "time"

type Product struct {
	ID        int       `json:"id" db:"id"`
	SKU       string    `json:"sku" db:"sku"`
	Barcode   string    `json:"barcode" db:"barcode"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateProductRequest struct {
	SKU     string `json:"sku" binding:"required"`
	Barcode string `json:"barcode" binding:"required"`
	Name    string `json:"name" binding:"required"`
}
