package entity

import "time"

// Roles válidos para User (conjunto cerrado).
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// CanManageUsers predicado de capacidad: solo el rol admin administra usuarios.
func CanManageUsers(role string) bool {
	return role == RoleAdmin
}

// ValidRole true si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User representa una cuenta del sistema. Username es la identidad, única e
// inmutable; PasswordHash es opaco (bcrypt, nunca texto plano).
type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"password_hash"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedDate  time.Time  `json:"created_date"`
}

// NewUser construye una cuenta nueva con el hash ya calculado por el colaborador de hashing.
func NewUser(username, passwordHash, role string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedDate:  time.Now(),
	}
}
