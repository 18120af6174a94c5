package service

import (
	"context"
	"errors"
	"fmt"

	"care_connect/internal/common"
	"care_connect/internal/domain/model"
	"care_connect/internal/domain/repository"
)

type VisitService struct {
	visitRepo     repository.VisitRepository
	orphanageRepo repository.OrphanageRepository
	userRepo      repository.UserRepository
}

func NewVisitService(
	visitRepo repository.VisitRepository,
	orphanageRepo repository.OrphanageRepository,
	userRepo repository.UserRepository,
) *VisitService {
	return &VisitService{visitRepo: visitRepo, orphanageRepo: orphanageRepo, userRepo: userRepo}
}

type ScheduleVisitRequest struct {
	OrgID       int64  `json:"orgId"`
	OrphanageID int64  `json:"orphanageId"`
	Date        string `json:"date"`
}

type VisitStats struct {
	TotalVisits int64 `json:"total_visits"`
}

// Schedule records a visit after checking that both referenced records
// exist. The date string is stored as-is.
func (s *VisitService) Schedule(ctx context.Context, req ScheduleVisitRequest) (*model.Visit, error) {
	if req.OrgID <= 0 {
		return nil, fmt.Errorf("orgId is required: %w", common.ErrValidation)
	}
	if req.OrphanageID <= 0 {
		return nil, fmt.Errorf("orphanageId is required: %w", common.ErrValidation)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("date is required: %w", common.ErrValidation)
	}

	if _, err := s.orphanageRepo.FindByID(ctx, req.OrphanageID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("orphanage %d does not exist: %w", req.OrphanageID, common.ErrValidation)
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.OrgID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("organization %d does not exist: %w", req.OrgID, common.ErrValidation)
		}
		return nil, err
	}

	v := &model.Visit{OrgID: req.OrgID, OrphanageID: req.OrphanageID, Date: req.Date}
	if err := s.visitRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VisitService) Stats(ctx context.Context) (*VisitStats, error) {
	total, err := s.visitRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &VisitStats{TotalVisits: total}, nil
}
