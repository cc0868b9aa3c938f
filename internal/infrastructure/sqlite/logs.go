package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/invorya/ims-backend/internal/domain/entity"
)

// AddLog inserta una entrada de auditoría con timestamp de reloj de pared
// al momento de la llamada. Las entradas nunca se modifican ni se borran.
func (s *Store) AddLog(user, action, details string) (int64, error) {
	id, err := s.RunUpdate(
		`INSERT INTO logs (user, timestamp, action, details) VALUES (?, ?, ?, ?)`,
		user, time.Now().Format(timeFormat), action, details,
	)
	if err != nil {
		return 0, fmt.Errorf("insert log: %w", err)
	}
	return id, nil
}

// GetLogs devuelve como máximo limit entradas, de la más reciente a la más antigua.
func (s *Store) GetLogs(limit int) ([]*entity.LogEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, user, timestamp, action, details FROM logs ORDER BY timestamp DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.LogEntry
	for rows.Next() {
		var (
			e       entity.LogEntry
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.User, &e.Timestamp, &e.Action, &details); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Details = details.String
		list = append(list, &e)
	}
	return list, rows.Err()
}
