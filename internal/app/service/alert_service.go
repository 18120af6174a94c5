package service

import (
	"context"
	"fmt"

	"care_connect/internal/common"
	"care_connect/internal/domain/model"
	"care_connect/internal/domain/repository"
)

type AlertService struct {
	alertRepo repository.AlertRepository
}

func NewAlertService(alertRepo repository.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

type CreateAlertRequest struct {
	Description string `json:"description"`
}

func (s *AlertService) Create(ctx context.Context, req CreateAlertRequest) (*model.Alert, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description is required: %w", common.ErrValidation)
	}
	a := &model.Alert{Description: req.Description}
	if err := s.alertRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AlertService) List(ctx context.Context) ([]model.Alert, error) {
	return s.alertRepo.List(ctx)
}
