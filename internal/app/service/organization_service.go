package service

import (
	"context"

	"care_connect/internal/domain/model"
	"care_connect/internal/domain/repository"
)

// OrganizationService flips the role of a user acting as an
// organization. The target is any user id; there is no separate
// organization record to check against.
type OrganizationService struct {
	userRepo repository.UserRepository
}

func NewOrganizationService(userRepo repository.UserRepository) *OrganizationService {
	return &OrganizationService{userRepo: userRepo}
}

func (s *OrganizationService) Approve(ctx context.Context, id int64) error {
	return s.setRole(ctx, id, model.RoleApproved)
}

func (s *OrganizationService) Ban(ctx context.Context, id int64) error {
	return s.setRole(ctx, id, model.RoleBanned)
}

func (s *OrganizationService) setRole(ctx context.Context, id int64, role model.Role) error {
	// UpdateRole reports common.ErrNotFound when the id does not resolve.
	return s.userRepo.UpdateRole(ctx, id, role)
}
