package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"care_connect/internal/common"
	"care_connect/internal/domain/model"
)

type OrphanageRepository interface {
	Create(ctx context.Context, o *model.Orphanage) error
	FindByID(ctx context.Context, id int64) (*model.Orphanage, error)
	List(ctx context.Context) ([]model.Orphanage, error)
	Update(ctx context.Context, o *model.Orphanage) error
	Delete(ctx context.Context, id int64) error
}

type pgOrphanageRepository struct {
	db *sql.DB
}

func NewPgOrphanageRepository(db *sql.DB) OrphanageRepository {
	return &pgOrphanageRepository{db: db}
}

func (r *pgOrphanageRepository) Create(ctx context.Context, o *model.Orphanage) error {
	query := `INSERT INTO orphanages (name, location) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, o.Name, o.Location).Scan(&o.ID); err != nil {
		return fmt.Errorf("pgOrphanageRepository.Create: %w", err)
	}
	return nil
}

func (r *pgOrphanageRepository) FindByID(ctx context.Context, id int64) (*model.Orphanage, error) {
	query := `SELECT id, name, location FROM orphanages WHERE id = $1`
	o := &model.Orphanage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgOrphanageRepository.FindByID: %w", err)
	}
	return o, nil
}

func (r *pgOrphanageRepository) List(ctx context.Context) ([]model.Orphanage, error) {
	query := `SELECT id, name, location FROM orphanages ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgOrphanageRepository.List: %w", err)
	}
	defer rows.Close()

	orphanages := []model.Orphanage{}
	for rows.Next() {
		var o model.Orphanage
		if err := rows.Scan(&o.ID, &o.Name, &o.Location); err != nil {
			return nil, fmt.Errorf("pgOrphanageRepository.List: %w", err)
		}
		orphanages = append(orphanages, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgOrphanageRepository.List: %w", err)
	}
	return orphanages, nil
}

func (r *pgOrphanageRepository) Update(ctx context.Context, o *model.Orphanage) error {
	query := `UPDATE orphanages SET name = $1, location = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, o.Name, o.Location, o.ID)
	if err != nil {
		return fmt.Errorf("pgOrphanageRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgOrphanageRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgOrphanageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orphanages WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgOrphanageRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgOrphanageRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
