package repository

import (
	"context"
	"database/sql"
	"fmt"

	"care_connect/internal/domain/model"
)

type VisitRepository interface {
	Create(ctx context.Context, v *model.Visit) error
	Count(ctx context.Context) (int64, error)
}

type pgVisitRepository struct {
	db *sql.DB
}

func NewPgVisitRepository(db *sql.DB) VisitRepository {
	return &pgVisitRepository{db: db}
}

func (r *pgVisitRepository) Create(ctx context.Context, v *model.Visit) error {
	query := `INSERT INTO visits (org_id, orphanage_id, visit_date)
	          VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, v.OrgID, v.OrphanageID, v.Date).Scan(&v.ID); err != nil {
		return fmt.Errorf("pgVisitRepository.Create: %w", err)
	}
	return nil
}

func (r *pgVisitRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&total); err != nil {
		return 0, fmt.Errorf("pgVisitRepository.Count: %w", err)
	}
	return total, nil
}
