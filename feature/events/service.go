package events

import (
	"context"

	"venue-manager/feature/rooms/models"

	"go.uber.org/zap"
)

// Service manages events.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates an events service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.List(ctx)
}

// Create validates in and stores it as a new event.
func (s *Service) Create(ctx context.Context, in models.EventCreate) (*models.Event, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	event := in.Event()
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.logger.Info("Event created", zap.Uint("event_id", event.ID), zap.String("title", event.Title))
	return event, nil
}
