package entity

import "time"

// Roles válidos para User. Role es el único atributo de autorización.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// ValidRole indica si el rol pertenece al conjunto cerrado ADMIN/MANAGER/STAFF.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, MANAGER, STAFF
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
