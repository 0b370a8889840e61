package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/opslink/opslink_cad/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DispatchRepository определяет контракт для работы с хранилищем инцидентов и юнитов
type DispatchRepository interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)

	GetUnitByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	ListUnits(ctx context.Context) ([]*models.Unit, error)
	CreateUnit(ctx context.Context, unit *models.Unit) error
	UpdateUnit(ctx context.Context, unit *models.Unit) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error

	// ApplyAssignment атомарно применяет назначение юнита на инцидент.
	// Предусловие AVAILABLE перепроверяется на стороне хранилища в момент записи;
	// при его нарушении возвращается apperrors.ErrConflict, и обе записи
	// остаются нетронутыми.
	ApplyAssignment(ctx context.Context, incident *models.Incident, unit *models.Unit) error

	// ApplyRelease атомарно применяет снятие юнитов с инцидента:
	// одна запись инцидента и все переданные юниты в одной транзакции.
	ApplyRelease(ctx context.Context, incident *models.Incident, units []*models.Unit) error

	GetStats(ctx context.Context) (*models.Stats, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// DispatchService определяет контракт машины состояний диспетчеризации
type DispatchService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, initialNote string) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	ListUnits(ctx context.Context) ([]*models.Unit, error)
	AssignUnit(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, *models.Unit, error)
	UnassignUnit(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error)
	SetUnitStatus(ctx context.Context, unitID uuid.UUID, status models.UnitStatus) (*models.Unit, error)
	SetIncidentStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus, message string) (*models.Incident, error)
	CloseIncident(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error)
	AddNote(ctx context.Context, incidentID uuid.UUID, text string) (*models.Incident, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type dispatchService struct {
	repo      DispatchRepository
	logger    *logrus.Logger
	publisher webhook.EventPublisher
	// now выдает метки времени журнала; назначается ядром в момент принятия
	// мутации, от вызывающего не принимается
	now func() time.Time
}

func NewDispatchService(repo DispatchRepository, logger *logrus.Logger, publisher webhook.EventPublisher) DispatchService {
	return &dispatchService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateIncident создает инцидент в статусе OPEN с первой записью журнала
func (s *dispatchService) CreateIncident(ctx context.Context, incident *models.Incident, initialNote string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	if strings.TrimSpace(incident.Type) == "" {
		return fmt.Errorf("service: incident type is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(incident.Address) == "" {
		return fmt.Errorf("service: incident address is required: %w", apperrors.ErrValidation)
	}
	if incident.Priority < 1 || incident.Priority > 3 {
		return fmt.Errorf("service: incident priority must be 1..3: %w", apperrors.ErrValidation)
	}

	now := s.now()
	incident.Status = models.IncidentOpen
	incident.UnitsAssigned = []uuid.UUID{}
	incident.Timeline = []models.TimelineEntry{{TS: now, Status: models.IncidentOpen, Message: "Incident created"}}
	incident.Notes = []models.Note{}
	if strings.TrimSpace(initialNote) != "" {
		incident.Notes = append(incident.Notes, models.Note{TS: now, Text: initialNote})
	}

	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Event:          "incident.created",
		IncidentID:     &incident.ID,
		IncidentNumber: incident.Number,
		Status:         string(incident.Status),
		Timestamp:      now,
	})

	log.WithField("incident_number", incident.Number).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала пробуя кэш
func (s *dispatchService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetIncidentByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *dispatchService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	return incidents, nil
}

// ListUnits возвращает все юниты
func (s *dispatchService) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list units from repository")
		return nil, fmt.Errorf("service: could not list units: %w", err)
	}
	return units, nil
}

// AssignUnit назначает свободный юнит на нетерминальный инцидент.
// Обе стороны связи (incident.units_assigned и unit.current_incident_id)
// изменяются одной транзакцией хранилища.
func (s *dispatchService) AssignUnit(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, *models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "AssignUnit",
		"incident_id": incidentID,
		"unit_id":     unitID,
	})
	log.Info("Attempting to assign unit to incident")

	incident, err := s.repo.GetIncidentByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident not found for assignment")
		return nil, nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Status.IsTerminal() {
		return nil, nil, fmt.Errorf("service: incident %s is %s: %w", incident.Number, incident.Status, apperrors.ErrInvalidState)
	}

	unit, err := s.repo.GetUnitByID(ctx, unitID)
	if err != nil {
		log.WithError(err).Warn("Unit not found for assignment")
		return nil, nil, fmt.Errorf("service: could not get unit: %w", err)
	}
	// Защита от двойного назначения: принимаем только свободный юнит
	if unit.Status != models.UnitAvailable {
		return nil, nil, fmt.Errorf("service: unit %s is %s, not AVAILABLE: %w", unit.Callsign, unit.Status, apperrors.ErrConflict)
	}

	now := s.now()
	incident.UnitsAssigned = append(incident.UnitsAssigned, unit.ID)
	if incident.Status == models.IncidentOpen {
		incident.Status = models.IncidentDispatched
	}
	incident.AppendTimeline(now, incident.Status, fmt.Sprintf("Unit %s assigned", unit.Callsign))

	unit.Status = models.UnitDispatched
	unit.CurrentIncidentID = &incident.ID

	if err := s.repo.ApplyAssignment(ctx, incident, unit); err != nil {
		log.WithError(err).Warn("Failed to apply assignment")
		return nil, nil, fmt.Errorf("service: could not assign unit: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Event:          "unit.assigned",
		IncidentID:     &incident.ID,
		IncidentNumber: incident.Number,
		UnitID:         &unit.ID,
		Callsign:       unit.Callsign,
		Status:         string(incident.Status),
		Timestamp:      now,
	})

	log.Info("Unit assigned successfully")
	return incident, unit, nil
}

// UnassignUnit снимает юнит с инцидента и возвращает его в AVAILABLE.
// Операция идемпотентна: повторное снятие уже снятой пары - no-op.
func (s *dispatchService) UnassignUnit(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "UnassignUnit",
		"incident_id": incidentID,
		"unit_id":     unitID,
	})
	log.Info("Attempting to unassign unit from incident")

	incident, err := s.repo.GetIncidentByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	unit, err := s.repo.GetUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get unit: %w", err)
	}

	if !incident.HasUnit(unit.ID) {
		log.Info("Unit is not assigned to incident, nothing to do")
		return incident, nil
	}

	now := s.now()
	incident.RemoveUnit(unit.ID)
	incident.AppendTimeline(now, incident.Status, fmt.Sprintf("Unit %s released", unit.Callsign))

	unit.Status = models.UnitAvailable
	unit.CurrentIncidentID = nil

	if err := s.repo.ApplyRelease(ctx, incident, []*models.Unit{unit}); err != nil {
		log.WithError(err).Error("Failed to apply release")
		return nil, fmt.Errorf("service: could not unassign unit: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Event:          "unit.released",
		IncidentID:     &incident.ID,
		IncidentNumber: incident.Number,
		UnitID:         &unit.ID,
		Callsign:       unit.Callsign,
		Status:         string(unit.Status),
		Timestamp:      now,
	})

	log.Info("Unit unassigned successfully")
	return incident, nil
}

// SetUnitStatus переводит юнит в новый статус. Перевод в AVAILABLE или
// OUT_OF_SERVICE при активной привязке выполняет неявное снятие с инцидента
// с записью в его журнал.
func (s *dispatchService) SetUnitStatus(ctx context.Context, unitID uuid.UUID, status models.UnitStatus) (*models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "SetUnitStatus",
		"unit_id": unitID,
		"status":  status,
	})
	log.Info("Attempting to set unit status")

	unit, err := s.repo.GetUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get unit: %w", err)
	}

	if !unit.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("service: unit %s cannot go %s -> %s: %w", unit.Callsign, unit.Status, status, apperrors.ErrInvalidState)
	}

	now := s.now()

	// Выход из активной привязки очищает ссылку на инцидент (неявное снятие)
	if !status.Committed() && unit.CurrentIncidentID != nil {
		incident, err := s.repo.GetIncidentByID(ctx, *unit.CurrentIncidentID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get incident for implicit release: %w", err)
		}

		incident.RemoveUnit(unit.ID)
		incident.AppendTimeline(now, incident.Status, fmt.Sprintf("Unit %s released (status set to %s)", unit.Callsign, status))

		unit.Status = status
		unit.CurrentIncidentID = nil

		if err := s.repo.ApplyRelease(ctx, incident, []*models.Unit{unit}); err != nil {
			log.WithError(err).Error("Failed to apply implicit release")
			return nil, fmt.Errorf("service: could not set unit status: %w", err)
		}

		if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
			log.WithError(err).Warn("Failed to invalidate incident cache")
		}
	} else {
		unit.Status = status
		if err := s.repo.UpdateUnit(ctx, unit); err != nil {
			log.WithError(err).Error("Failed to update unit in repository")
			return nil, fmt.Errorf("service: could not set unit status: %w", err)
		}
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Event:     "unit.status_changed",
		UnitID:    &unit.ID,
		Callsign:  unit.Callsign,
		Status:    string(unit.Status),
		Timestamp: now,
	})

	log.Info("Unit status set successfully")
	return unit, nil
}

// SetIncidentStatus переводит инцидент в новый статус. Переход в терминальный
// статус одной атомарной операцией снимает все назначенные юниты: сначала
// запись о смене статуса, затем записи о снятии в порядке исходного назначения.
func (s *dispatchService) SetIncidentStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus, message string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "SetIncidentStatus",
		"incident_id": incidentID,
		"status":      status,
	})
	log.Info("Attempting to set incident status")

	incident, err := s.repo.GetIncidentByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if !incident.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("service: incident %s cannot go %s -> %s: %w", incident.Number, incident.Status, status, apperrors.ErrInvalidState)
	}

	now := s.now()
	incident.Status = status
	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("Status changed to %s", status)
	}
	incident.AppendTimeline(now, status, message)

	if status.IsTerminal() {
		// Инцидент не может закрыться, удерживая юниты: снимаем всех разом
		released := make([]*models.Unit, 0, len(incident.UnitsAssigned))
		for _, unitID := range incident.UnitsAssigned {
			unit, err := s.repo.GetUnitByID(ctx, unitID)
			if err != nil {
				return nil, fmt.Errorf("service: could not get assigned unit %s: %w", unitID, err)
			}
			unit.Status = models.UnitAvailable
			unit.CurrentIncidentID = nil
			incident.AppendTimeline(now, status, fmt.Sprintf("Unit %s released", unit.Callsign))
			released = append(released, unit)
		}
		incident.UnitsAssigned = []uuid.UUID{}

		if err := s.repo.ApplyRelease(ctx, incident, released); err != nil {
			log.WithError(err).Error("Failed to apply terminal release")
			return nil, fmt.Errorf("service: could not set incident status: %w", err)
		}
	} else {
		if err := s.repo.UpdateIncident(ctx, incident); err != nil {
			log.WithError(err).Error("Failed to update incident in repository")
			return nil, fmt.Errorf("service: could not set incident status: %w", err)
		}
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Event:          "incident.status_changed",
		IncidentID:     &incident.ID,
		IncidentNumber: incident.Number,
		Status:         string(status),
		Timestamp:      now,
	})

	log.Info("Incident status set successfully")
	return incident, nil
}

// CloseIncident закрывает инцидент (переход в CLEARED)
func (s *dispatchService) CloseIncident(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error) {
	return s.SetIncidentStatus(ctx, incidentID, models.IncidentCleared, "Incident cleared")
}

// AddNote добавляет заметку к инциденту
func (s *dispatchService) AddNote(ctx context.Context, incidentID uuid.UUID, text string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "AddNote",
		"incident_id": incidentID,
	})

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("service: note text is required: %w", apperrors.ErrValidation)
	}

	incident, err := s.repo.GetIncidentByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	incident.Notes = append(incident.Notes, models.Note{TS: s.now(), Text: text})

	if err := s.repo.UpdateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not add note: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Note added successfully")
	return incident, nil
}

// GetStats возвращает счетчики для дашборда
func (s *dispatchService) GetStats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

// publishEvent публикует событие диспетчеризации; сбой публикации не
// отменяет уже принятую мутацию
func (s *dispatchService) publishEvent(ctx context.Context, log *logrus.Entry, event webhook.DispatchEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch event")
	}
}
