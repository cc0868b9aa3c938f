package dto

import "github.com/invorya/ims-backend/internal/domain/entity"

// LogEntryResponse salida de una entrada de auditoría.
type LogEntryResponse struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
}

// LogListResponse lista de entradas de auditoría.
type LogListResponse struct {
	Items []LogEntryResponse `json:"items"`
	Total int                `json:"total"`
}

// ToLogEntryResponse convierte la entidad al DTO de salida.
func ToLogEntryResponse(e *entity.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:        e.ID,
		User:      e.User,
		Timestamp: e.Timestamp,
		Action:    e.Action,
		Details:   e.Details,
	}
}
