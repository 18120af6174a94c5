package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care_connect/internal/common"
	"care_connect/internal/domain/model"
)

func TestAlertService_Create(t *testing.T) {
	repo := &mockAlertRepo{
		createFn: func(ctx context.Context, a *model.Alert) error {
			a.ID = 1
			return nil
		},
	}
	svc := NewAlertService(repo)

	alert, err := svc.Create(context.Background(), CreateAlertRequest{Description: "unscheduled night visit"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alert.ID)
	assert.Equal(t, "unscheduled night visit", alert.Description)

	_, err = svc.Create(context.Background(), CreateAlertRequest{})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAlertService_List(t *testing.T) {
	repo := &mockAlertRepo{
		listFn: func(ctx context.Context) ([]model.Alert, error) {
			return []model.Alert{{ID: 1, Description: "a"}, {ID: 2, Description: "b"}}, nil
		},
	}
	svc := NewAlertService(repo)

	alerts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}
