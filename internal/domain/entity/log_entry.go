package entity

// Acciones auditables conocidas. El campo Action es texto libre; estas
// constantes solo fijan los nombres que este núcleo emite.
const (
	ActionAddProduct = "ADD_PRODUCT"
	ActionLogin      = "LOGIN"
)

// LogEntry representa una entrada del registro de auditoría (append-only).
type LogEntry struct {
	ID        int64
	User      string
	Timestamp string // ISO-8601 ordenable, hora local al momento del registro
	Action    string
	Details   string
}
