package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/invorya/ims-backend/internal/domain/entity"
	"github.com/invorya/ims-backend/internal/domain/repository"
)

// DefaultLogLimit máximo de entradas por defecto en las consultas de auditoría.
const DefaultLogLimit = 100

// AuditUseCase fachada del registro de auditoría sobre el almacén.
type AuditUseCase struct {
	store repository.Store
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(store repository.Store) *AuditUseCase {
	return &AuditUseCase{store: store}
}

// LogAction registra una acción auditable. No valida entradas: user o
// action vacíos se almacenan tal cual.
func (uc *AuditUseCase) LogAction(user, action, details string) error {
	_, err := uc.store.AddLog(user, action, details)
	return err
}

// GetRecentLogs devuelve como máximo limit entradas recientes (más nueva primero).
// limit <= 0 usa DefaultLogLimit.
func (uc *AuditUseCase) GetRecentLogs(limit int) ([]*entity.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return uc.store.GetLogs(limit)
}

// GetLogsByUser devuelve entradas cuyo user coincide exactamente con username.
//
// Filtro aproximado: trae 2×limit entradas recientes y filtra en cliente.
// Si dentro de esa ventana hay menos de limit coincidencias, el resultado
// queda corto aunque existan más coincidencias más atrás en el historial.
// Limitación documentada, no un bug a corregir en silencio.
func (uc *AuditUseCase) GetLogsByUser(username string, limit int) ([]*entity.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	recent, err := uc.GetRecentLogs(limit * 2)
	if err != nil {
		return nil, err
	}
	var matched []*entity.LogEntry
	for _, e := range recent {
		if e.User == username {
			matched = append(matched, e)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// GetLogsByAction devuelve entradas cuya action contiene el texto indicado
// (sin distinguir mayúsculas). Mismo patrón aproximado de 2×limit que
// GetLogsByUser.
func (uc *AuditUseCase) GetLogsByAction(action string, limit int) ([]*entity.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	recent, err := uc.GetRecentLogs(limit * 2)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(action)
	var matched []*entity.LogEntry
	for _, e := range recent {
		if strings.Contains(strings.ToLower(e.Action), needle) {
			matched = append(matched, e)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// FormatLogEntry renderiza una entrada como "[timestamp] user: action - details".
// El sufijo de details solo aparece si no está vacío; campos faltantes se
// muestran como "N/A" en lugar de fallar.
func (uc *AuditUseCase) FormatLogEntry(e *entity.LogEntry) string {
	timestamp := orNA(e.Timestamp)
	user := orNA(e.User)
	action := orNA(e.Action)
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s - %s", timestamp, user, action, e.Details)
	}
	return fmt.Sprintf("[%s] %s: %s", timestamp, user, action)
}

// DisplayLogs escribe las entradas en w como bloque bordeado, o un aviso si
// no hay ninguna. Ayudante de presentación, no parte del contrato de datos.
func (uc *AuditUseCase) DisplayLogs(w io.Writer, logs []*entity.LogEntry) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No logs found.")
		return
	}
	border := strings.Repeat("=", 80)
	fmt.Fprintln(w, "\n"+border)
	fmt.Fprintln(w, "AUDIT LOGS")
	fmt.Fprintln(w, border)
	for _, e := range logs {
		fmt.Fprintln(w, uc.FormatLogEntry(e))
	}
	fmt.Fprintln(w, border+"\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
