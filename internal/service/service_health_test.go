package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check_OK(t *testing.T) {
	pinger := mock.NewMockPinger(gomock.NewController(t))
	svc := NewHealthService(pinger, "1.2.3", logger.Nop())

	pinger.EXPECT().PingContext(gomock.Any()).Return(nil)

	resp, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHealthService_Check_DatabaseDown(t *testing.T) {
	pinger := mock.NewMockPinger(gomock.NewController(t))
	svc := NewHealthService(pinger, "1.2.3", logger.Nop())

	pingErr := errors.New("connection refused")
	pinger.EXPECT().PingContext(gomock.Any()).Return(pingErr)

	_, err := svc.Check(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.ErrorIs(t, err, pingErr)
}
