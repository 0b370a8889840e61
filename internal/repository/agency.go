package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/opslink/opslink_cad/internal/service"
)

type AgencyRepository struct {
	db *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) service.AgencyRepository {
	return &AgencyRepository{db: db}
}

// GetAgencyByID возвращает агентство по его UUID
func (r *AgencyRepository) GetAgencyByID(ctx context.Context, id uuid.UUID) (*models.Agency, error) {
	agency := &models.Agency{}
	query := `
		SELECT id, name, supervisor_password_hash, created_at
		FROM agencies
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agency.ID,
		&agency.Name,
		&agency.SupervisorPasswordHash,
		&agency.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agency %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agency by id: %w", err)
	}
	return agency, nil
}
