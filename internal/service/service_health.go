package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

const healthStatusOK = "ok"

type healthService struct {
	pinger     store.Pinger
	appVersion string

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, appVersion string, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:     pinger,
		appVersion: appVersion,
		logger:     logger,
	}
}

func (s *healthService) Check(ctx context.Context) (models.HealthResponse, error) {
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return models.HealthResponse{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.HealthResponse{Status: healthStatusOK, Version: s.appVersion}, nil
}
