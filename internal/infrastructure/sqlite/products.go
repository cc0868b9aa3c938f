package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invorya/ims-backend/internal/domain"
	"github.com/invorya/ims-backend/internal/domain/entity"
)

const productColumns = `id, sku, name, price, category, stock, description, created_at, updated_at`

// AddProduct inserta un producto y devuelve su id. Una violación del
// constraint único de SKU se traduce a domain.ErrDuplicate; el resto de
// errores del motor se propagan envueltos.
func (s *Store) AddProduct(sku, name string, price decimal.Decimal, category string, stock int64, description string) (int64, error) {
	id, err := s.RunUpdate(
		`INSERT INTO products (sku, name, price, category, stock, description) VALUES (?, ?, ?, ?, ?, ?)`,
		sku, name, price, category, stock, description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetAllProducts devuelve todos los productos ordenados por nombre ascendente.
func (s *Store) GetAllProducts() ([]*entity.Product, error) {
	return s.queryProducts(`SELECT `+productColumns+` FROM products ORDER BY name`, nil)
}

// GetProductByID obtiene un producto por id. (nil, nil) si no existe.
func (s *Store) GetProductByID(id int64) (*entity.Product, error) {
	return s.queryProduct(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
}

// GetProductBySKU obtiene un producto por SKU. (nil, nil) si no existe.
func (s *Store) GetProductBySKU(sku string) (*entity.Product, error) {
	return s.queryProduct(`SELECT `+productColumns+` FROM products WHERE sku = ?`, sku)
}

// SearchProducts busca productos cuyo nombre, SKU o categoría contenga el
// término, ordenados por nombre. La sensibilidad a mayúsculas es la del
// LIKE por defecto del motor.
func (s *Store) SearchProducts(term string) ([]*entity.Product, error) {
	pattern := "%" + term + "%"
	return s.queryProducts(
		`SELECT `+productColumns+` FROM products
		 WHERE name LIKE ? OR sku LIKE ? OR category LIKE ?
		 ORDER BY name`,
		[]any{pattern, pattern, pattern},
	)
}

func (s *Store) queryProduct(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Store) queryProducts(query string, args []any) ([]*entity.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// rowScanner abstrae *sql.Row y *sql.Rows para compartir el scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(r rowScanner) (*entity.Product, error) {
	var (
		p                    entity.Product
		category, desc       sql.NullString
		createdAt, updatedAt sql.NullString
	)
	err := r.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &category, &p.Stock, &desc, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.Category = category.String
	p.Description = desc.String
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return &p, nil
}
