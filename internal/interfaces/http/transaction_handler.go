package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/application/notify"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

// TransactionHandler consulta del log de auditoría y de las notificaciones.
type TransactionHandler struct {
	txlog    repository.TransactionLog
	center   *notify.Center
	itemRepo repository.ItemRepository
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(txlog repository.TransactionLog, center *notify.Center, itemRepo repository.ItemRepository) *TransactionHandler {
	return &TransactionHandler{txlog: txlog, center: center, itemRepo: itemRepo}
}

// Recent últimas n entradas del log, la más antigua de la ventana primero.
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 20)
	if n <= 0 {
		n = 20
	}
	lines, err := h.txlog.Recent(n)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"transactions": lines, "count": len(lines)})
}

// Notifications últimas n notificaciones del buffer acotado.
func (h *TransactionHandler) Notifications(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 50)
	if n <= 0 {
		n = 50
	}
	return c.JSON(fiber.Map{"notifications": h.center.Recent(n)})
}

// GenerateDaily rederiva las notificaciones del día desde el snapshot actual.
func (h *TransactionHandler) GenerateDaily(c *fiber.Ctx) error {
	items, err := h.itemRepo.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.center.GenerateDaily(items)
	return c.JSON(fiber.Map{"ok": true})
}
