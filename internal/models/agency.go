package models

import (
	"time"

	"github.com/google/uuid"
)

// Agency - агентство, владеющее пользователями и юнитами
type Agency struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// SupervisorPasswordHash - bcrypt-хэш общего секрета агентства,
	// наружу никогда не отдается
	SupervisorPasswordHash string    `json:"-"`
	CreatedAt              time.Time `json:"created_at"`
}
