package service

import (
	"context"
	"fmt"

	"care_connect/internal/common"
	"care_connect/internal/domain/model"
	"care_connect/internal/domain/repository"
)

type OrphanageService struct {
	orphanageRepo repository.OrphanageRepository
}

func NewOrphanageService(orphanageRepo repository.OrphanageRepository) *OrphanageService {
	return &OrphanageService{orphanageRepo: orphanageRepo}
}

type OrphanageRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r OrphanageRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required: %w", common.ErrValidation)
	}
	if r.Location == "" {
		return fmt.Errorf("location is required: %w", common.ErrValidation)
	}
	return nil
}

func (s *OrphanageService) Create(ctx context.Context, req OrphanageRequest) (*model.Orphanage, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	o := &model.Orphanage{Name: req.Name, Location: req.Location}
	if err := s.orphanageRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrphanageService) Get(ctx context.Context, id int64) (*model.Orphanage, error) {
	return s.orphanageRepo.FindByID(ctx, id)
}

func (s *OrphanageService) List(ctx context.Context) ([]model.Orphanage, error) {
	return s.orphanageRepo.List(ctx)
}

func (s *OrphanageService) Update(ctx context.Context, id int64, req OrphanageRequest) (*model.Orphanage, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	o := &model.Orphanage{ID: id, Name: req.Name, Location: req.Location}
	if err := s.orphanageRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrphanageService) Delete(ctx context.Context, id int64) error {
	return s.orphanageRepo.Delete(ctx, id)
}
