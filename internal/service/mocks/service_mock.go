package mocks

import (
	"context"

	"fyyur/internal/model"

	"github.com/stretchr/testify/mock"
)

type VenueServiceMock struct {
	mock.Mock
}

func NewVenueServiceMock() *VenueServiceMock {
	return &VenueServiceMock{}
}

func (m *VenueServiceMock) ListAreas(ctx context.Context) ([]model.AreaView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AreaView), args.Error(1)
}

func (m *VenueServiceMock) Search(ctx context.Context, term string) (model.SearchResultView, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(model.SearchResultView), args.Error(1)
}

func (m *VenueServiceMock) GetDetail(ctx context.Context, id int) (*model.VenueDetailView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VenueDetailView), args.Error(1)
}

func (m *VenueServiceMock) Get(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) FindIDByName(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *VenueServiceMock) Recent(ctx context.Context) ([]model.VenueSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VenueSummary), args.Error(1)
}

func (m *VenueServiceMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, id, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ArtistServiceMock struct {
	mock.Mock
}

func NewArtistServiceMock() *ArtistServiceMock {
	return &ArtistServiceMock{}
}

func (m *ArtistServiceMock) List(ctx context.Context) ([]model.ArtistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArtistSummary), args.Error(1)
}

func (m *ArtistServiceMock) Search(ctx context.Context, term string) (model.SearchResultView, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(model.SearchResultView), args.Error(1)
}

func (m *ArtistServiceMock) GetDetail(ctx context.Context, id int) (*model.ArtistDetailView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtistDetailView), args.Error(1)
}

func (m *ArtistServiceMock) Get(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) FindIDByName(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *ArtistServiceMock) Recent(ctx context.Context) ([]model.ArtistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArtistSummary), args.Error(1)
}

func (m *ArtistServiceMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, id, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ShowServiceMock struct {
	mock.Mock
}

func NewShowServiceMock() *ShowServiceMock {
	return &ShowServiceMock{}
}

func (m *ShowServiceMock) List(ctx context.Context) ([]model.ShowView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShowView), args.Error(1)
}

func (m *ShowServiceMock) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}
