package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
)

const unitColumns = `
	id,
	callsign,
	type,
	status,
	current_incident_id,
	agency_id,
	created_at,
	updated_at
`

// CreateUnit создает новую запись о юните в бд
func (r *DispatchRepository) CreateUnit(ctx context.Context, unit *models.Unit) error {
	query := `
		INSERT INTO units (callsign, type, status, agency_id)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		unit.Callsign,
		unit.Type,
		unit.Status,
		unit.AgencyID,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// Позывной уникален в пределах агентства
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("unit callsign %s already exists: %w", unit.Callsign, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// GetUnitByID возвращает юнит по его UUID
func (r *DispatchRepository) GetUnitByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1;`

	unit, err := scanUnit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get unit by id: %w", err)
	}
	return unit, nil
}

// ListUnits возвращает все юниты, упорядоченные по позывному
func (r *DispatchRepository) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY callsign;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	units := make([]*models.Unit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return units, nil
}

// UpdateUnit обновляет статус и привязку юнита
func (r *DispatchRepository) UpdateUnit(ctx context.Context, unit *models.Unit) error {
	query := `
		UPDATE units SET
			status = $1,
			current_incident_id = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	var currentIncidentID uuid.NullUUID
	if unit.CurrentIncidentID != nil {
		currentIncidentID = uuid.NullUUID{UUID: *unit.CurrentIncidentID, Valid: true}
	}

	cmdTag, err := r.db.Exec(ctx, query, unit.Status, currentIncidentID, unit.ID)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", unit.ID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteUnit удаляет запись о юните
func (r *DispatchRepository) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM units WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	unit := &models.Unit{}
	var currentIncidentID uuid.NullUUID

	err := row.Scan(
		&unit.ID,
		&unit.Callsign,
		&unit.Type,
		&unit.Status,
		&currentIncidentID,
		&unit.AgencyID,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if currentIncidentID.Valid {
		id := currentIncidentID.UUID
		unit.CurrentIncidentID = &id
	}
	return unit, nil
}
