package service

import (
	"context"
	"errors"

	"fyyur/internal/model"
	"fyyur/internal/presenter"
	"fyyur/internal/repository"
	apperrors "fyyur/pkg/app_errors"
	"fyyur/pkg/logger"

	"go.uber.org/zap"
)

type ShowService interface {
	List(ctx context.Context) ([]model.ShowView, error)
	// Create 建立 show，venue 與 artist 必須都存在
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
}

type ShowServiceImpl struct {
	repo       repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
}

func NewShowService(repo repository.ShowRepository, venueRepo repository.VenueRepository, artistRepo repository.ArtistRepository) ShowService {
	return &ShowServiceImpl{repo: repo, venueRepo: venueRepo, artistRepo: artistRepo}
}

func (s *ShowServiceImpl) List(ctx context.Context) ([]model.ShowView, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.ShowList(listings), nil
}

func (s *ShowServiceImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	fields := make(map[string]string)
	if show.VenueID <= 0 {
		fields["venue_id"] = "is required"
	}
	if show.ArtistID <= 0 {
		fields["artist_id"] = "is required"
	}
	if show.StartTime == nil {
		fields["start_time"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &apperrors.ValidationError{Fields: fields}
	}

	if _, err := s.venueRepo.FindByID(ctx, show.VenueID); err != nil {
		if errors.Is(err, apperrors.ErrVenueNotFound) {
			return nil, apperrors.ErrInvalidShowReference
		}
		return nil, err
	}
	if _, err := s.artistRepo.FindByID(ctx, show.ArtistID); err != nil {
		if errors.Is(err, apperrors.ErrArtistNotFound) {
			return nil, apperrors.ErrInvalidShowReference
		}
		return nil, err
	}

	created, err := s.repo.Create(ctx, show)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("show created",
		zap.Int("show_id", created.ID),
		zap.Int("venue_id", created.VenueID),
		zap.Int("artist_id", created.ArtistID),
	)
	return created, nil
}
