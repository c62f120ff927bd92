package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetVenues(t *testing.T) {
	areas := []model.AreaView{{
		City:   "San Francisco",
		State:  "CA",
		Venues: []model.VenueSummary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}},
	}}

	t.Run("JSON", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("ListAreas", mock.Anything).Return(areas, nil).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, areas, decode[[]model.AreaView](t, w))
		s.assertExpectations(t)
	})

	t.Run("HTML", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("ListAreas", mock.Anything).Return(areas, nil).Once()

		req := newJSONRequest(http.MethodGet, "/venues")
		req.Header.Set("Accept", "text/html")
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "The Musical Hop")
		assert.Contains(t, w.Body.String(), "San Francisco, CA")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("StoreError", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("ListAreas", mock.Anything).Return(nil, &apperrors.StoreError{Op: "venue.list", Err: assert.AnError}).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode[errorResponse](t, w).Error)
	})
}

func TestSearchVenues(t *testing.T) {
	router, s := setupTestRouter(t)
	result := model.SearchResultView{Count: 1, Data: []model.SearchHit{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1}}}
	s.venues.On("Search", mock.Anything, "Hop").Return(result, nil).Once()

	w := serve(router, newFormRequest("/venues/search", url.Values{"search_term": {"Hop"}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, result, decode[model.SearchResultView](t, w))
	s.assertExpectations(t)
}

func TestGetVenue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("GetDetail", mock.Anything, 1).Return(&model.VenueDetailView{
			ID:                 1,
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz"},
			PastShows:          []model.VenueShowView{},
			UpcomingShows:      []model.VenueShowView{{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2035-04-01T20:00:00.000Z"}},
			UpcomingShowsCount: 1,
		}, nil).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues/1"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, float64(0), body["past_shows_count"])
		assert.Equal(t, float64(1), body["upcoming_shows_count"])
		s.assertExpectations(t)
	})

	t.Run("ByNameRedirects", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("FindIDByName", mock.Anything, "The Musical Hop").Return(1, nil).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues/The%20Musical%20Hop"))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/venues/1", w.Header().Get("Location"))
	})

	t.Run("NotFound", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("GetDetail", mock.Anything, 99).Return(nil, apperrors.ErrVenueNotFound).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues/99"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Venue not found", decode[errorResponse](t, w).Error)
	})

	t.Run("UnknownName", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("FindIDByName", mock.Anything, "Nowhere").Return(0, apperrors.ErrVenueNotFound).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues/Nowhere"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateVenue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Venue) bool {
			return v.Name == "The Musical Hop" && v.SeekingTalent && v.Website == "https://www.themusicalhop.com" && len(v.Genres) == 3
		})).Return(&model.Venue{ID: 1, Name: "The Musical Hop"}, nil).Once()
		s.venues.On("Recent", mock.Anything).Return([]model.VenueSummary{{ID: 1, Name: "The Musical Hop"}}, nil).Once()
		s.artists.On("Recent", mock.Anything).Return([]model.ArtistSummary{}, nil).Once()

		w := serve(router, newFormRequest("/venues/create", validVenueForm()))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		// 下一個頁面顯示 flash 訊息
		req := newJSONRequest(http.MethodGet, "/")
		req.Header.Set("Accept", "text/html")
		req.AddCookie(sessionCookie(t, w))
		home := serve(router, req)

		assert.Equal(t, http.StatusOK, home.Code)
		assert.Contains(t, home.Body.String(), "Venue The Musical Hop was successfully listed!")
		s.assertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		router, s := setupTestRouter(t)
		form := validVenueForm()
		form.Set("name", "")
		form.Set("state", "XX")
		form["genres"] = []string{"Jazz", "Polka"}
		form.Set("website_link", "not a url")

		w := serve(router, newFormRequest("/venues/create", form))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[errorResponse](t, w)
		assert.Contains(t, body.Fields, "name")
		assert.Contains(t, body.Fields, "state")
		assert.Contains(t, body.Fields, "genres")
		assert.Contains(t, body.Fields, "website_link")
		s.venues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnlistedGenre", func(t *testing.T) {
		router, s := setupTestRouter(t)
		form := validVenueForm()
		form["genres"] = []string{"Jazz", "Swing"}

		w := serve(router, newFormRequest("/venues/create", form))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[errorResponse](t, w).Fields, "genres")
		s.venues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicateName).Once()

		w := serve(router, newFormRequest("/venues/create", validVenueForm()))

		assert.Equal(t, http.StatusConflict, w.Code)
		s.assertExpectations(t)
	})

	t.Run("FormPage", func(t *testing.T) {
		router, _ := setupTestRouter(t)
		req := newJSONRequest(http.MethodGet, "/venues/create")
		req.Header.Set("Accept", "text/html")

		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<option value="Rock n Roll">`)
		assert.Contains(t, w.Body.String(), `<option value="WY">`)
	})
}

func TestEditVenue(t *testing.T) {
	t.Run("FormPrefilled", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Get", mock.Anything, 1).Return(&model.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}, nil).Once()

		w := serve(router, newJSONRequest(http.MethodGet, "/venues/1/edit"))

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "The Musical Hop", body["name"])
		assert.Equal(t, []any{"Jazz"}, body["genres"])
	})

	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Update", mock.Anything, 1, mock.Anything).Return(&model.Venue{ID: 1, Name: "The Musical Hop"}, nil).Once()

		w := serve(router, newFormRequest("/venues/1/edit", validVenueForm()))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/venues/1", w.Header().Get("Location"))
		s.assertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Update", mock.Anything, 9, mock.Anything).Return(nil, apperrors.ErrVenueNotFound).Once()

		w := serve(router, newFormRequest("/venues/9/edit", validVenueForm()))

		assert.Equal(t, http.StatusNotFound, w.Code)
		s.assertExpectations(t)
	})
}

func TestDeleteVenue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Delete", mock.Anything, 1).Return(nil).Once()

		w := serve(router, newJSONRequest(http.MethodDelete, "/venues/1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("NoFlashForJSON", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Delete", mock.Anything, 1).Return(nil).Once()

		w := serve(router, newJSONRequest(http.MethodDelete, "/venues/1"))

		require.Equal(t, http.StatusOK, w.Code)
		flashes, err := s.flashes.Pop(t.Context(), sessionCookie(t, w).Value)
		require.NoError(t, err)
		assert.Empty(t, flashes)
	})

	t.Run("FlashForPage", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Delete", mock.Anything, 1).Return(nil).Once()

		req := newJSONRequest(http.MethodDelete, "/venues/1")
		req.Header.Set("Accept", "text/html")
		w := serve(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
		flashes, err := s.flashes.Pop(t.Context(), sessionCookie(t, w).Value)
		require.NoError(t, err)
		require.Len(t, flashes, 1)
		assert.Equal(t, "Venue was successfully deleted!", flashes[0].Message)
	})

	t.Run("HasShows", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Delete", mock.Anything, 1).Return(apperrors.ErrHasShows).Once()

		w := serve(router, newJSONRequest(http.MethodDelete, "/venues/1"))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.venues.On("Delete", mock.Anything, 5).Return(apperrors.ErrVenueNotFound).Once()

		w := serve(router, newJSONRequest(http.MethodDelete, "/venues/5"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := serve(router, newJSONRequest(http.MethodDelete, "/venues/abc"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		s.venues.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
