package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetShows(t *testing.T) {
	router, s := setupTestRouter(t)
	shows := []model.ShowView{{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.test/gnp.jpg",
		StartTime:       "2019-05-21T21:30:00.000Z",
	}}
	s.shows.On("List", mock.Anything).Return(shows, nil).Once()

	w := serve(router, newJSONRequest(http.MethodGet, "/shows"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, shows, decode[[]model.ShowView](t, w))
}

func TestGetShows_InternalServerError(t *testing.T) {
	router, s := setupTestRouter(t)
	s.shows.On("List", mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

	w := serve(router, newJSONRequest(http.MethodGet, "/shows"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode[errorResponse](t, w).Error)
}

func TestCreateShow(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
		s.shows.On("Create", mock.Anything, mock.MatchedBy(func(show *model.Show) bool {
			return show.VenueID == 1 && show.ArtistID == 4 && show.StartTime != nil && show.StartTime.Equal(want)
		})).Return(&model.Show{ID: 1, VenueID: 1, ArtistID: 4, StartTime: &want}, nil).Once()

		w := serve(router, newFormRequest("/shows/create", url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"1"},
			"start_time": {"2035-04-01 20:00:00"},
		}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		s.assertExpectations(t)
	})

	t.Run("MalformedStartTime", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := serve(router, newFormRequest("/shows/create", url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"1"},
			"start_time": {"next friday"},
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[errorResponse](t, w).Fields, "start_time")
		s.shows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, newFormRequest("/shows/create", url.Values{}))

		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := decode[errorResponse](t, w).Fields
		assert.Contains(t, fields, "artist_id")
		assert.Contains(t, fields, "venue_id")
		assert.Contains(t, fields, "start_time")
	})

	t.Run("UnknownVenue", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.shows.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidShowReference).Once()

		w := serve(router, newFormRequest("/shows/create", url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"99"},
			"start_time": {"2035-04-01 20:00:00"},
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Show must reference an existing venue and artist", decode[errorResponse](t, w).Error)
	})
}
