// Package sqlite implementa el puerto repository.Store sobre un único
// archivo SQLite (driver modernc.org/sqlite, sin CGO).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sqlite3 "modernc.org/sqlite"

	"github.com/invorya/ims-backend/internal/domain/repository"
	"github.com/invorya/ims-backend/pkg/passhash"
)

// Formato de timestamp para las entradas de auditoría: ISO-8601 con
// microsegundos fijos para que el orden lexicográfico sea cronológico.
const timeFormat = "2006-01-02T15:04:05.000000"

// Store almacén SQLite de un solo archivo. Dueño exclusivo del handle.
type Store struct {
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

// Open abre (o crea) el archivo SQLite en path, crea el esquema si no
// existe y siembra el admin por defecto si la tabla de usuarios está vacía.
// El seed es idempotente: reaperturas posteriores no insertan un segundo admin.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta del almacén requerida")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio del almacén: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	if err := s.seedAdminUser(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sembrar admin: %w", err)
	}
	return s, nil
}

// Close cierra el archivo SQLite subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// createTables crea las seis tablas del esquema si no existen.
func (s *Store) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sku TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			category TEXT,
			stock INTEGER NOT NULL DEFAULT 0,
			description TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			contact_person TEXT,
			email TEXT,
			phone TEXT,
			address TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sales_orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			total_price REAL NOT NULL,
			order_date TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (product_id) REFERENCES products (id)
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL,
			supplier_id INTEGER,
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL,
			total_price REAL NOT NULL,
			order_date TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (product_id) REFERENCES products (id),
			FOREIGN KEY (supplier_id) REFERENCES suppliers (id)
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL,
			timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
			action TEXT NOT NULL,
			details TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec DDL: %w", err)
		}
	}
	return nil
}

// seedAdminUser inserta el admin por defecto si y solo si no hay usuarios.
// Credencial por defecto conocida (admin/admin123 con salt fija): el esquema
// de hash debe coincidir byte a byte con el del componente de autenticación.
func (s *Store) seedAdminUser() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		passhash.DefaultAdminUser, passhash.Hash(passhash.DefaultAdminPassword), "admin",
	)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// RunQuery ejecuta un SELECT parametrizado y devuelve cada fila como un
// mapa columna -> valor, en el orden que entrega el motor.
func (s *Store) RunQuery(query string, args ...any) ([]repository.Row, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columnas: %w", err)
	}

	var out []repository.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan fila: %w", err)
		}
		row := make(repository.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RunUpdate ejecuta un INSERT/UPDATE/DELETE parametrizado. Para INSERT
// devuelve el id de la fila insertada; para el resto el valor no es relevante.
func (s *Store) RunUpdate(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// isUniqueViolation verifica si un error es una violación de constraint
// único de SQLite (SQLITE_CONSTRAINT_UNIQUE = 2067, _PRIMARYKEY = 1555).
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code() == 2067 || serr.Code() == 1555
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
