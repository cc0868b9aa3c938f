package entity

import "github.com/shopspring/decimal"

// SalesOrder representa una venta de un producto. Solo esquema: este núcleo
// no implementa operaciones sobre órdenes.
type SalesOrder struct {
	ID         int64
	ProductID  int64
	Quantity   int64
	TotalPrice decimal.Decimal
	OrderDate  string
}

// PurchaseOrder representa una compra a un proveedor. Solo esquema.
type PurchaseOrder struct {
	ID         int64
	ProductID  int64
	SupplierID int64
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	OrderDate  string
}
