package mocks

import (
	"context"
	"time"

	"fyyur/internal/model"

	"github.com/stretchr/testify/mock"
)

type VenueRepositoryMock struct {
	mock.Mock
}

func NewVenueRepositoryMock() *VenueRepositoryMock {
	return &VenueRepositoryMock{}
}

func (m *VenueRepositoryMock) List(ctx context.Context) ([]*model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Recent(ctx context.Context, limit int) ([]*model.Venue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) FindIDByName(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *VenueRepositoryMock) SearchByName(ctx context.Context, term string) ([]model.SearchRow, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchRow), args.Error(1)
}

func (m *VenueRepositoryMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, id, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) ReplaceGenres(ctx context.Context, id int, genres []string) error {
	args := m.Called(ctx, id, genres)
	return args.Error(0)
}

func (m *VenueRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ArtistRepositoryMock struct {
	mock.Mock
}

func NewArtistRepositoryMock() *ArtistRepositoryMock {
	return &ArtistRepositoryMock{}
}

func (m *ArtistRepositoryMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Recent(ctx context.Context, limit int) ([]*model.Artist, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) FindIDByName(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *ArtistRepositoryMock) SearchByName(ctx context.Context, term string) ([]model.SearchRow, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchRow), args.Error(1)
}

func (m *ArtistRepositoryMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, id, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) ReplaceGenres(ctx context.Context, id int, genres []string) error {
	args := m.Called(ctx, id, genres)
	return args.Error(0)
}

func (m *ArtistRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ShowRepositoryMock struct {
	mock.Mock
}

func NewShowRepositoryMock() *ShowRepositoryMock {
	return &ShowRepositoryMock{}
}

func (m *ShowRepositoryMock) List(ctx context.Context) ([]*model.ShowListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowListing), args.Error(1)
}

func (m *ShowRepositoryMock) FindByVenueID(ctx context.Context, venueID int, after *time.Time) ([]*model.ShowListing, error) {
	args := m.Called(ctx, venueID, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowListing), args.Error(1)
}

func (m *ShowRepositoryMock) FindByArtistID(ctx context.Context, artistID int, after *time.Time) ([]*model.ShowListing, error) {
	args := m.Called(ctx, artistID, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowListing), args.Error(1)
}

func (m *ShowRepositoryMock) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}
