package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя консоли
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
)

// ParseRole проверяет, что строка входит в закрытый словарь ролей
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleSupervisor:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	// Suspended блокирует вход, запись при этом сохраняется.
	// Необратимое удаление - отдельная операция terminate.
	Suspended bool      `json:"suspended"`
	AgencyID  uuid.UUID `json:"agency_id"`
	CreatedAt time.Time `json:"created_at"`
}
