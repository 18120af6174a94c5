package repository

import (
	"context"
	"database/sql"
	"fmt"

	"care_connect/internal/domain/model"
)

type AlertRepository interface {
	Create(ctx context.Context, a *model.Alert) error
	List(ctx context.Context) ([]model.Alert, error)
}

type pgAlertRepository struct {
	db *sql.DB
}

func NewPgAlertRepository(db *sql.DB) AlertRepository {
	return &pgAlertRepository{db: db}
}

func (r *pgAlertRepository) Create(ctx context.Context, a *model.Alert) error {
	query := `INSERT INTO alerts (description) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, a.Description).Scan(&a.ID); err != nil {
		return fmt.Errorf("pgAlertRepository.Create: %w", err)
	}
	return nil
}

func (r *pgAlertRepository) List(ctx context.Context) ([]model.Alert, error) {
	query := `SELECT id, description FROM alerts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgAlertRepository.List: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.Description); err != nil {
			return nil, fmt.Errorf("pgAlertRepository.List: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAlertRepository.List: %w", err)
	}
	return alerts, nil
}
