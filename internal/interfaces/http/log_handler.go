package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/ims-backend/internal/application/dto"
	"github.com/invorya/ims-backend/internal/application/usecase"
	"github.com/invorya/ims-backend/internal/domain/entity"
)

// LogHandler expone el registro de auditoría (solo admin).
type LogHandler struct {
	uc *usecase.AuditUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.AuditUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Consultar registro de auditoría
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Máximo de entradas"  default(100)
// @Param        user    query  string  false  "Filtrar por usuario (coincidencia exacta)"
// @Param        action  query  string  false  "Filtrar por acción (subcadena, sin mayúsculas)"
// @Success      200  {object}  dto.LogListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultLogLimit)

	var (
		logs []*entity.LogEntry
		err  error
	)
	switch {
	case c.Query("user") != "":
		logs, err = h.uc.GetLogsByUser(c.Query("user"), limit)
	case c.Query("action") != "":
		logs, err = h.uc.GetLogsByAction(c.Query("action"), limit)
	default:
		logs, err = h.uc.GetRecentLogs(limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.LogEntryResponse, 0, len(logs))
	for _, e := range logs {
		items = append(items, dto.ToLogEntryResponse(e))
	}
	return c.JSON(dto.LogListResponse{Items: items, Total: len(items)})
}
