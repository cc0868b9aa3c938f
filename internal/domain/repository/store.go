package repository

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/ims-backend/internal/domain/entity"
)

// Row es una fila genérica devuelta por RunQuery: columna -> valor.
type Row map[string]any

// Store define el puerto de persistencia del sistema (DIP). Una sola
// interfaz porque el almacén es un único archivo SQLite con dueño único;
// los casos de uso dependen de este puerto, nunca del driver.
type Store interface {
	// Primitivas genéricas parametrizadas. Nunca concatenar SQL con datos.
	RunQuery(query string, args ...any) ([]Row, error)
	RunUpdate(query string, args ...any) (int64, error)

	// Productos
	AddProduct(sku, name string, price decimal.Decimal, category string, stock int64, description string) (int64, error)
	GetAllProducts() ([]*entity.Product, error)
	GetProductByID(id int64) (*entity.Product, error)
	GetProductBySKU(sku string) (*entity.Product, error)
	SearchProducts(term string) ([]*entity.Product, error)

	// Auditoría
	AddLog(user, action, details string) (int64, error)
	GetLogs(limit int) ([]*entity.LogEntry, error)

	// Usuarios (solo lectura; la creación ocurre en el seed)
	GetUserByUsername(username string) (*entity.User, error)

	Close() error
}
