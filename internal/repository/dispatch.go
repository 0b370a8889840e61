package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/opslink/opslink_cad/internal/service"
	"github.com/redis/go-redis/v9"
)

type DispatchRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewDispatchRepository(db *pgxpool.Pool, redisClient *redis.Client) service.DispatchRepository {
	return &DispatchRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ApplyAssignment применяет назначение юнита на инцидент одной транзакцией.
// Статус юнита перепроверяется условием WHERE в момент записи: если юнит
// уже не AVAILABLE (конкурентное назначение), ни одна из записей не меняется.
func (r *DispatchRepository) ApplyAssignment(ctx context.Context, incident *models.Incident, unit *models.Unit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin assignment tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE units SET
			status = $1,
			current_incident_id = $2,
			updated_at = NOW()
		WHERE id = $3 AND status = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, unit.Status, incident.ID, unit.ID, models.UnitAvailable)
	if err != nil {
		return fmt.Errorf("failed to update unit for assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s is no longer available: %w", unit.Callsign, apperrors.ErrConflict)
	}

	if err := updateIncidentTx(ctx, tx, incident); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignment tx: %w", err)
	}
	return nil
}

// ApplyRelease применяет снятие юнитов с инцидента одной транзакцией:
// запись инцидента и все переданные юниты вместе
func (r *DispatchRepository) ApplyRelease(ctx context.Context, incident *models.Incident, units []*models.Unit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin release tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := updateIncidentTx(ctx, tx, incident); err != nil {
		return err
	}

	query := `
		UPDATE units SET
			status = $1,
			current_incident_id = NULL,
			updated_at = NOW()
		WHERE id = $2;
	`
	for _, unit := range units {
		cmdTag, err := tx.Exec(ctx, query, unit.Status, unit.ID)
		if err != nil {
			return fmt.Errorf("failed to update unit %s for release: %w", unit.Callsign, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("unit %s: %w", unit.ID, apperrors.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit release tx: %w", err)
	}
	return nil
}
