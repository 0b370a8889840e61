package v1

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest DTO для входа в консоль
// @Description DTO для входа в консоль
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO для ответа на вход
// @Description DTO для ответа на вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type     string `json:"type" validate:"required,min=2,max=255"`
	Priority int    `json:"priority" validate:"required,min=1,max=3"`
	Address  string `json:"address" validate:"required,min=2,max=512"`
	Note     string `json:"note,omitempty"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=OPEN DISPATCHED EN_ROUTE ON_SCENE CLEARED CANCELLED"`
	Message string `json:"message,omitempty"`
}

// AssignUnitRequest DTO для назначения юнита на инцидент
// @Description DTO для назначения юнита на инцидент
type AssignUnitRequest struct {
	UnitID uuid.UUID `json:"unit_id" validate:"required"`
}

// UnassignUnitRequest DTO для снятия юнита с инцидента
// @Description DTO для снятия юнита с инцидента
type UnassignUnitRequest struct {
	UnitID uuid.UUID `json:"unit_id" validate:"required"`
}

// AddNoteRequest DTO для добавления заметки к инциденту
// @Description DTO для добавления заметки к инциденту
type AddNoteRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CreateUnitRequest DTO для регистрации юнита
// @Description DTO для регистрации юнита
type CreateUnitRequest struct {
	Callsign string `json:"callsign" validate:"required,min=1,max=32"`
	Type     string `json:"type" validate:"required,min=2,max=64"`
}

// UpdateUnitStatusRequest DTO для смены статуса юнита
// @Description DTO для смены статуса юнита
type UpdateUnitStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE DISPATCHED EN_ROUTE ON_SCENE OUT_OF_SERVICE"`
}

// UpdateUserRoleRequest DTO для смены роли пользователя
// @Description DTO для смены роли пользователя
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user supervisor"`
}

// VerifySupervisorRequest DTO для проверки пароля супервизора
// @Description DTO для проверки пароля супервизора
type VerifySupervisorRequest struct {
	Password string `json:"password" validate:"required"`
}

// TimelineEntryResponse - запись журнала инцидента в ответе
type TimelineEntryResponse struct {
	TS      time.Time `json:"ts"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
}

// NoteResponse - заметка инцидента в ответе
type NoteResponse struct {
	TS   time.Time `json:"ts"`
	Text string    `json:"text"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            uuid.UUID               `json:"id"`
	Number        string                  `json:"number"`
	Type          string                  `json:"type"`
	Priority      int                     `json:"priority"`
	Status        string                  `json:"status"`
	Address       string                  `json:"address"`
	UnitsAssigned []uuid.UUID             `json:"units_assigned"`
	Timeline      []TimelineEntryResponse `json:"timeline"`
	Notes         []NoteResponse          `json:"notes"`
	AgencyID      uuid.UUID               `json:"agency_id"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// UnitResponse DTO для ответа с информацией о юните
// @Description DTO для ответа с информацией о юните
type UnitResponse struct {
	ID                uuid.UUID  `json:"id"`
	Callsign          string     `json:"callsign"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	CurrentIncidentID *uuid.UUID `json:"current_incident_id,omitempty"`
	AgencyID          uuid.UUID  `json:"agency_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Suspended bool      `json:"suspended"`
	AgencyID  uuid.UUID `json:"agency_id"`
}

// AgencyResponse DTO для ответа с информацией об агентстве.
// Секрет супервизора наружу не отдается.
type AgencyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// StatsResponse DTO для ответа со счетчиками дашборда
// @Description DTO для ответа со счетчиками дашборда
type StatsResponse struct {
	TotalIncidents  int `json:"total_incidents"`
	ActiveIncidents int `json:"active_incidents"`
	OnScene         int `json:"on_scene"`
	Dispatched      int `json:"dispatched"`
	TotalUnits      int `json:"total_units"`
	AvailableUnits  int `json:"available_units"`
}
