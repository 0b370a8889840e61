package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit - диспетчеризуемый ресурс (расчет, экипаж)
type Unit struct {
	ID       uuid.UUID  `json:"id"`
	Callsign string     `json:"callsign"` // уникален в пределах агентства
	Type     string     `json:"type"`
	Status   UnitStatus `json:"status"`
	// CurrentIncidentID заполнен только пока статус означает активную привязку
	CurrentIncidentID *uuid.UUID `json:"current_incident_id,omitempty"`
	AgencyID          uuid.UUID  `json:"agency_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
