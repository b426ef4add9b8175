package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

// auditor registra acciones en el log de transacciones desde los handlers.
// Los stores son agnósticos del log: es esta capa la que decide cuándo anotar.
// El registro es best-effort: un fallo de escritura se reporta pero no
// revierte la mutación que lo originó.
type auditor struct {
	txlog repository.TransactionLog
}

func (a auditor) record(c *fiber.Ctx, action, details string) {
	if a.txlog == nil {
		return
	}
	entry := entity.NewTransactionEntry(GetUsername(c), action, details)
	if err := a.txlog.Append(entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la transacción")
	}
}
