package service

import (
	"context"

	"care_connect/internal/domain/model"
)

// Hand-rolled repository mocks with pluggable behavior per test.

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *model.User) error
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	findByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	updateRoleFn     func(ctx context.Context, id int64, role model.Role) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.findByUsernameFn(ctx, username)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	return m.updateRoleFn(ctx, id, role)
}

type mockOrphanageRepo struct {
	createFn   func(ctx context.Context, o *model.Orphanage) error
	findByIDFn func(ctx context.Context, id int64) (*model.Orphanage, error)
	listFn     func(ctx context.Context) ([]model.Orphanage, error)
	updateFn   func(ctx context.Context, o *model.Orphanage) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockOrphanageRepo) Create(ctx context.Context, o *model.Orphanage) error {
	return m.createFn(ctx, o)
}

func (m *mockOrphanageRepo) FindByID(ctx context.Context, id int64) (*model.Orphanage, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockOrphanageRepo) List(ctx context.Context) ([]model.Orphanage, error) {
	return m.listFn(ctx)
}

func (m *mockOrphanageRepo) Update(ctx context.Context, o *model.Orphanage) error {
	return m.updateFn(ctx, o)
}

func (m *mockOrphanageRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockVisitRepo struct {
	createFn func(ctx context.Context, v *model.Visit) error
	countFn  func(ctx context.Context) (int64, error)
}

func (m *mockVisitRepo) Create(ctx context.Context, v *model.Visit) error {
	return m.createFn(ctx, v)
}

func (m *mockVisitRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockAlertRepo struct {
	createFn func(ctx context.Context, a *model.Alert) error
	listFn   func(ctx context.Context) ([]model.Alert, error)
}

func (m *mockAlertRepo) Create(ctx context.Context, a *model.Alert) error {
	return m.createFn(ctx, a)
}

func (m *mockAlertRepo) List(ctx context.Context) ([]model.Alert, error) {
	return m.listFn(ctx)
}
