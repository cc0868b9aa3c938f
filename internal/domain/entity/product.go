package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario identificado por su SKU.
// Stock es la cantidad global en bodega (entero, nunca negativo).
type Product struct {
	ID          int64
	SKU         string // código único del producto
	Name        string
	Price       decimal.Decimal // precio de venta, >= 0
	Category    string
	Stock       int64
	Description string
	CreatedAt   string // texto del motor (CURRENT_TIMESTAMP)
	UpdatedAt   string
}
