package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id,
	number,
	type,
	priority,
	status,
	address,
	units_assigned,
	timeline,
	notes,
	agency_id,
	created_at,
	updated_at
`

// CreateIncident создает новую запись об инциденте в бд.
// Номер инцидента выдает последовательность бд, он неизменяем.
func (r *DispatchRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	unitsJSON, timelineJSON, notesJSON, err := marshalIncidentJSON(incident)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO incidents (type, priority, status, address, units_assigned, timeline, notes, agency_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, number, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Priority,
		incident.Status,
		incident.Address,
		unitsJSON,
		timelineJSON,
		notesJSON,
		incident.AgencyID,
	).Scan(&incident.ID, &incident.Number, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetIncidentByID возвращает инцидент по его UUID
func (r *DispatchRepository) GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// UpdateIncident обновляет изменяемые поля инцидента одной записью.
// Журнал и заметки лежат в той же строке, поэтому смена статуса и записи
// журнала применяются неразделимо.
func (r *DispatchRepository) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := updateIncidentTx(ctx, tx, incident); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident tx: %w", err)
	}
	return nil
}

func updateIncidentTx(ctx context.Context, tx pgx.Tx, incident *models.Incident) error {
	unitsJSON, timelineJSON, notesJSON, err := marshalIncidentJSON(incident)
	if err != nil {
		return err
	}

	query := `
		UPDATE incidents SET
			status = $1,
			units_assigned = $2,
			timeline = $3,
			notes = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := tx.Exec(ctx, query,
		incident.Status,
		unitsJSON,
		timelineJSON,
		notesJSON,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	// Проверка, была ли обновлена хоть одна строка
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incident.ID, apperrors.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (r *DispatchRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetStats возвращает счетчики инцидентов и юнитов для дашборда
func (r *DispatchRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}

	incidentQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status NOT IN ('CLEARED', 'CANCELLED')),
			COUNT(*) FILTER (WHERE status = 'ON_SCENE'),
			COUNT(*) FILTER (WHERE status IN ('DISPATCHED', 'EN_ROUTE'))
		FROM incidents;
	`
	err := r.db.QueryRow(ctx, incidentQuery).Scan(
		&stats.TotalIncidents,
		&stats.ActiveIncidents,
		&stats.OnScene,
		&stats.Dispatched,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident stats: %w", err)
	}

	unitQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'AVAILABLE')
		FROM units;
	`
	err = r.db.QueryRow(ctx, unitQuery).Scan(&stats.TotalUnits, &stats.AvailableUnits)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit stats: %w", err)
	}

	return stats, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *DispatchRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *DispatchRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *DispatchRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// marshalIncidentJSON сериализует встроенные коллекции инцидента для jsonb-колонок
func marshalIncidentJSON(incident *models.Incident) ([]byte, []byte, []byte, error) {
	if incident.UnitsAssigned == nil {
		incident.UnitsAssigned = []uuid.UUID{}
	}
	if incident.Timeline == nil {
		incident.Timeline = []models.TimelineEntry{}
	}
	if incident.Notes == nil {
		incident.Notes = []models.Note{}
	}

	unitsJSON, err := json.Marshal(incident.UnitsAssigned)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal units_assigned: %w", err)
	}
	timelineJSON, err := json.Marshal(incident.Timeline)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal timeline: %w", err)
	}
	notesJSON, err := json.Marshal(incident.Notes)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal notes: %w", err)
	}
	return unitsJSON, timelineJSON, notesJSON, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var unitsJSON, timelineJSON, notesJSON []byte

	err := row.Scan(
		&incident.ID,
		&incident.Number,
		&incident.Type,
		&incident.Priority,
		&incident.Status,
		&incident.Address,
		&unitsJSON,
		&timelineJSON,
		&notesJSON,
		&incident.AgencyID,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(unitsJSON, &incident.UnitsAssigned); err != nil {
		return nil, fmt.Errorf("failed to unmarshal units_assigned: %w", err)
	}
	if err := json.Unmarshal(timelineJSON, &incident.Timeline); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}
	if err := json.Unmarshal(notesJSON, &incident.Notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notes: %w", err)
	}
	return incident, nil
}
