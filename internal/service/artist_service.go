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

type ArtistService interface {
	List(ctx context.Context) ([]model.ArtistSummary, error)
	Search(ctx context.Context, term string) (model.SearchResultView, error)
	GetDetail(ctx context.Context, id int) (*model.ArtistDetailView, error)
	Get(ctx context.Context, id int) (*model.Artist, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	Recent(ctx context.Context) ([]model.ArtistSummary, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error)
	Delete(ctx context.Context, id int) error
}

type ArtistServiceImpl struct {
	repo     repository.ArtistRepository
	showRepo repository.ShowRepository
	opts     options
}

func NewArtistService(repo repository.ArtistRepository, showRepo repository.ShowRepository, opts ...Option) ArtistService {
	return &ArtistServiceImpl{repo: repo, showRepo: showRepo, opts: newOptions(opts)}
}

func (s *ArtistServiceImpl) List(ctx context.Context) ([]model.ArtistSummary, error) {
	artists, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.ArtistSummaries(artists), nil
}

// Search 空字串不查詢，直接回傳空結果
func (s *ArtistServiceImpl) Search(ctx context.Context, term string) (model.SearchResultView, error) {
	if strings.TrimSpace(term) == "" {
		return listing.Search(s.opts.now(), nil), nil
	}
	rows, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return model.SearchResultView{}, err
	}
	return listing.Search(s.opts.now(), rows), nil
}

func (s *ArtistServiceImpl) GetDetail(ctx context.Context, id int) (*model.ArtistDetailView, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepo.FindByArtistID(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	view := presenter.ArtistDetail(artist, schedule.Partition(s.opts.now(), shows))
	return &view, nil
}

func (s *ArtistServiceImpl) Get(ctx context.Context, id int) (*model.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) FindIDByName(ctx context.Context, name string) (int, error) {
	return s.repo.FindIDByName(ctx, name)
}

func (s *ArtistServiceImpl) Recent(ctx context.Context) ([]model.ArtistSummary, error) {
	artists, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	return presenter.ArtistSummaries(artists), nil
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	artist.Normalize()
	if err := validateListing(artist.Name, artist.City, artist.State, artist.Genres); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, artist)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("artist created",
		zap.Int("artist_id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

func (s *ArtistServiceImpl) Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error) {
	artist.Normalize()
	if err := validateListing(artist.Name, artist.City, artist.State, artist.Genres); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, artist)
}

func (s *ArtistServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithComponent("service").Info("artist deleted", zap.Int("artist_id", id))
	return nil
}
