package service

import (
	"context"
	"strings"

	"fyyur/internal/listing"
	"fyyur/internal/model"
	"fyyur/internal/presenter"
	"fyyur/internal/repository"
	"fyyur/internal/schedule"
	"fyyur/pkg/logger"

	"go.uber.org/zap"
)

type VenueService interface {
	// ListAreas 依 (city, state) 分組列出所有 venue
	ListAreas(ctx context.Context) ([]model.AreaView, error)
	Search(ctx context.Context, term string) (model.SearchResultView, error)
	GetDetail(ctx context.Context, id int) (*model.VenueDetailView, error)
	Get(ctx context.Context, id int) (*model.Venue, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	Recent(ctx context.Context) ([]model.VenueSummary, error)
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueServiceImpl struct {
	repo     repository.VenueRepository
	showRepo repository.ShowRepository
	opts     options
}

func NewVenueService(repo repository.VenueRepository, showRepo repository.ShowRepository, opts ...Option) VenueService {
	return &VenueServiceImpl{repo: repo, showRepo: showRepo, opts: newOptions(opts)}
}

func (s *VenueServiceImpl) ListAreas(ctx context.Context) ([]model.AreaView, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.GroupByArea(s.opts.now(), venues, listing.ShowsByVenue(shows)), nil
}

// Search 空字串不查詢，直接回傳空結果
func (s *VenueServiceImpl) Search(ctx context.Context, term string) (model.SearchResultView, error) {
	if strings.TrimSpace(term) == "" {
		return listing.Search(s.opts.now(), nil), nil
	}
	rows, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return model.SearchResultView{}, err
	}
	return listing.Search(s.opts.now(), rows), nil
}

func (s *VenueServiceImpl) GetDetail(ctx context.Context, id int) (*model.VenueDetailView, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepo.FindByVenueID(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	view := presenter.VenueDetail(venue, schedule.Partition(s.opts.now(), shows))
	return &view, nil
}

func (s *VenueServiceImpl) Get(ctx context.Context, id int) (*model.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) FindIDByName(ctx context.Context, name string) (int, error) {
	return s.repo.FindIDByName(ctx, name)
}

func (s *VenueServiceImpl) Recent(ctx context.Context) ([]model.VenueSummary, error) {
	venues, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	return presenter.VenueSummaries(venues), nil
}

func (s *VenueServiceImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	venue.Normalize()
	if err := validateListing(venue.Name, venue.City, venue.State, venue.Genres); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("venue created",
		zap.Int("venue_id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

func (s *VenueServiceImpl) Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error) {
	venue.Normalize()
	if err := validateListing(venue.Name, venue.City, venue.State, venue.Genres); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, venue)
}

func (s *VenueServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithComponent("service").Info("venue deleted", zap.Int("venue_id", id))
	return nil
}
