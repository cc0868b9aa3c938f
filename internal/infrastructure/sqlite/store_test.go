package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/ims-backend/internal/domain"
	"github.com/invorya/ims-backend/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestStore abre un almacén sobre un archivo temporal del test.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.db")
	s, err := sqlite.Open(path)
	require.NoError(t, err, "debe abrirse el almacén en un directorio temporal")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustAddProduct(t *testing.T, s *sqlite.Store, sku, name string, price float64, category string, stock int64) int64 {
	t.Helper()
	id, err := s.AddProduct(sku, name, decimal.NewFromFloat(price), category, stock, "")
	require.NoError(t, err)
	require.Positive(t, id)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Esquema y seed
// ──────────────────────────────────────────────────────────────────────────────

// Un almacén recién inicializado contiene exactamente un usuario: admin/admin.
func TestOpen_SiembraUnSoloAdmin(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.RunQuery(`SELECT username, role FROM users`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "admin", rows[0]["username"])
	assert.Equal(t, "admin", rows[0]["role"])
}

// Reabrir el mismo archivo no inserta un segundo admin (seed idempotente).
func TestOpen_SeedIdempotenteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")

	s1, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := sqlite.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	rows, err := s2.RunQuery(`SELECT COUNT(*) AS count FROM users`)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows[0]["count"])
}

// Open crea el directorio contenedor si no existe.
func TestOpen_CreaDirectorioContenedor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "inventory.db")
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// AddProduct seguido de GetProductBySKU devuelve exactamente los valores insertados.
func TestAddProduct_RoundTripPorSKU(t *testing.T) {
	s := newTestStore(t)

	id := mustAddProduct(t, s, "SKU-001", "Gaming Laptop", 1299.99, "Electrónica", 5)

	p, err := s.GetProductBySKU("SKU-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "SKU-001", p.SKU)
	assert.Equal(t, "Gaming Laptop", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(1299.99)), "precio leído: %s", p.Price)
	assert.Equal(t, "Electrónica", p.Category)
	assert.EqualValues(t, 5, p.Stock)
}

// Insertar directamente un SKU duplicado viola el constraint único del motor.
func TestAddProduct_SKUDuplicadoDevuelveErrDuplicate(t *testing.T) {
	s := newTestStore(t)

	mustAddProduct(t, s, "SKU-001", "Mouse", 10, "Accesorios", 3)
	_, err := s.AddProduct("SKU-001", "Otro Mouse", decimal.NewFromInt(12), "Accesorios", 1, "")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// GetProductByID y GetProductBySKU devuelven (nil, nil) para identificadores inexistentes.
func TestGetProduct_AusenteNoEsError(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProductByID(9999)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.GetProductBySKU("NO-EXISTE")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// GetAllProducts ordena por nombre ascendente.
func TestGetAllProducts_OrdenadosPorNombre(t *testing.T) {
	s := newTestStore(t)

	mustAddProduct(t, s, "SKU-C", "Zapato", 50, "Calzado", 1)
	mustAddProduct(t, s, "SKU-A", "Audífonos", 80, "Accesorios", 2)
	mustAddProduct(t, s, "SKU-B", "Monitor", 200, "Electrónica", 3)

	list, err := s.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Audífonos", list[0].Name)
	assert.Equal(t, "Monitor", list[1].Name)
	assert.Equal(t, "Zapato", list[2].Name)
}

// SearchProducts encuentra por subcadena en nombre, SKU o categoría.
func TestSearchProducts_SubcadenaEnNombreSKUOCategoria(t *testing.T) {
	s := newTestStore(t)

	mustAddProduct(t, s, "LAP-001", "Gaming Laptop", 1200, "Computadores", 2)
	mustAddProduct(t, s, "LAP-002", "Business Laptop", 900, "Computadores", 4)
	mustAddProduct(t, s, "TEC-001", "Teclado", 30, "Accesorios", 10)

	byName, err := s.SearchProducts("Laptop")
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Business Laptop", byName[0].Name)
	assert.Equal(t, "Gaming Laptop", byName[1].Name)

	bySKU, err := s.SearchProducts("TEC-")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Teclado", bySKU[0].Name)

	byCategory, err := s.SearchProducts("Accesorios")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	none, err := s.SearchProducts("inexistente")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// ──────────────────────────────────────────────────────────────────────────────
// Primitivas genéricas
// ──────────────────────────────────────────────────────────────────────────────

// RunQuery devuelve filas como mapas columna -> valor.
func TestRunQuery_FilasComoMapas(t *testing.T) {
	s := newTestStore(t)

	mustAddProduct(t, s, "SKU-001", "Mouse", 10.5, "Accesorios", 3)

	rows, err := s.RunQuery(`SELECT sku, name, stock FROM products WHERE sku = ?`, "SKU-001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SKU-001", rows[0]["sku"])
	assert.Equal(t, "Mouse", rows[0]["name"])
	assert.EqualValues(t, 3, rows[0]["stock"])
}

// RunUpdate devuelve el id de la fila insertada.
func TestRunUpdate_DevuelveIDInsertado(t *testing.T) {
	s := newTestStore(t)

	id, err := s.RunUpdate(
		`INSERT INTO suppliers (name, contact_person) VALUES (?, ?)`,
		"ACME", "Jane",
	)
	require.NoError(t, err)
	assert.Positive(t, id)

	id2, err := s.RunUpdate(`INSERT INTO suppliers (name) VALUES (?)`, "Globex")
	require.NoError(t, err)
	assert.Equal(t, id+1, id2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría
// ──────────────────────────────────────────────────────────────────────────────

// GetLogs devuelve las entradas más recientes primero, acotadas por limit.
func TestGetLogs_OrdenDescendenteConLimite(t *testing.T) {
	s := newTestStore(t)

	// Timestamps explícitos para que el orden sea determinista.
	for i, ts := range []string{
		"2025-01-01T10:00:00.000000",
		"2025-01-01T11:00:00.000000",
		"2025-01-01T12:00:00.000000",
	} {
		_, err := s.RunUpdate(
			`INSERT INTO logs (user, timestamp, action, details) VALUES (?, ?, ?, ?)`,
			"admin", ts, "ACTION", string(rune('A'+i)),
		)
		require.NoError(t, err)
	}

	logs, err := s.GetLogs(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-01-01T12:00:00.000000", logs[0].Timestamp)
	assert.Equal(t, "2025-01-01T11:00:00.000000", logs[1].Timestamp)
}

// AddLog genera un timestamp ordenable y conserva los campos tal cual.
func TestAddLog_GuardaCamposYTimestamp(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddLog("alice", "ADD_PRODUCT", "Added product: Mouse (SKU: SKU-001)")
	require.NoError(t, err)
	assert.Positive(t, id)

	logs, err := s.GetLogs(1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "alice", logs[0].User)
	assert.Equal(t, "ADD_PRODUCT", logs[0].Action)
	assert.Contains(t, logs[0].Details, "SKU-001")
	assert.NotEmpty(t, logs[0].Timestamp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestGetUserByUsername_AdminSembrado(t *testing.T) {
	s := newTestStore(t)

	u, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Role)
	assert.NotEmpty(t, u.PasswordHash)

	missing, err := s.GetUserByUsername("nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
