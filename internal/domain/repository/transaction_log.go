package repository

import "github.com/tu-usuario/sims-backend/internal/domain/entity"

// TransactionLog puerto del log de auditoría append-only.
// Append es best-effort: un fallo de escritura se reporta pero no revierte la
// mutación que lo originó. Recent devuelve las últimas n líneas en orden
// cronológico (la más antigua de la ventana primero).
type TransactionLog interface {
	Append(entry *entity.TransactionEntry) error
	Recent(n int) ([]string, error)
}
