package entity

import (
	"fmt"
	"time"
)

// ActorSystem sentinel para acciones sin usuario autenticado.
const ActorSystem = "SYSTEM"

// Códigos de acción registrados en el log de transacciones.
const (
	ActionLogin          = "LOGIN"
	ActionLogout         = "LOGOUT"
	ActionAddItem        = "ADD_ITEM"
	ActionUpdateItem     = "UPDATE_ITEM"
	ActionDeleteItem     = "DELETE_ITEM"
	ActionAddUser        = "ADD_USER"
	ActionDeleteUser     = "DELETE_USER"
	ActionAddSupplier    = "ADD_SUPPLIER"
	ActionChangePassword = "CHANGE_PASSWORD"
	ActionExport         = "EXPORT"
	ActionBackup         = "BACKUP"
)

// TransactionEntry registro inmutable del log de auditoría. No tiene identidad
// más allá de su posición en el log.
type TransactionEntry struct {
	Timestamp time.Time
	Actor     string // username o ActorSystem
	Action    string
	Details   string
}

// NewTransactionEntry construye una entrada con marca de tiempo actual.
func NewTransactionEntry(actor, action, details string) *TransactionEntry {
	if actor == "" {
		actor = ActorSystem
	}
	return &TransactionEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	}
}

// String formatea la entrada como línea del log: [<ts>] <actor> - <action>: <detail>.
func (e *TransactionEntry) String() string {
	return fmt.Sprintf("[%s] %s - %s: %s",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Details)
}
