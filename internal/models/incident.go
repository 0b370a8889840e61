package models

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEntry - одна запись журнала инцидента. Записи только добавляются,
// никогда не редактируются и не удаляются.
type TimelineEntry struct {
	TS      time.Time      `json:"ts"`
	Status  IncidentStatus `json:"status"`
	Message string         `json:"message"`
}

// Note - заметка диспетчера по инциденту, независима от журнала
type Note struct {
	TS   time.Time `json:"ts"`
	Text string    `json:"text"`
}

type Incident struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"` // человекочитаемый номер, неизменяем
	Type          string          `json:"type"`
	Priority      int             `json:"priority"` // 1 = угроза жизни, 2 = срочный, 3 = плановый
	Status        IncidentStatus  `json:"status"`
	Address       string          `json:"address"`
	UnitsAssigned []uuid.UUID     `json:"units_assigned"` // порядок назначения сохраняется
	Timeline      []TimelineEntry `json:"timeline"`
	Notes         []Note          `json:"notes"`
	AgencyID      uuid.UUID       `json:"agency_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasUnit сообщает, числится ли юнит в составе назначенных на инцидент
func (i *Incident) HasUnit(unitID uuid.UUID) bool {
	for _, id := range i.UnitsAssigned {
		if id == unitID {
			return true
		}
	}
	return false
}

// RemoveUnit убирает юнит из списка назначенных, сохраняя порядок остальных
func (i *Incident) RemoveUnit(unitID uuid.UUID) {
	kept := i.UnitsAssigned[:0]
	for _, id := range i.UnitsAssigned {
		if id != unitID {
			kept = append(kept, id)
		}
	}
	i.UnitsAssigned = kept
}

// AppendTimeline добавляет запись в журнал инцидента
func (i *Incident) AppendTimeline(ts time.Time, status IncidentStatus, message string) {
	i.Timeline = append(i.Timeline, TimelineEntry{TS: ts, Status: status, Message: message})
}
