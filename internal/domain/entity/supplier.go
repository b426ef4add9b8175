package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier representa un proveedor. Las relaciones con artículos son por
// identificador copiado, nunca por referencia viva.
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedDate   time.Time `json:"created_date"`
}

// NewSupplier construye un proveedor con ID generado.
func NewSupplier(name, contactPerson, email, phone, address string) *Supplier {
	return &Supplier{
		ID:            "SUP" + strings.ToUpper(uuid.New().String()[:8]),
		Name:          name,
		ContactPerson: contactPerson,
		Email:         email,
		Phone:         phone,
		Address:       address,
		CreatedDate:   time.Now(),
	}
}
