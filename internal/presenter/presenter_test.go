package presenter_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"fyyur/internal/model"
	"fyyur/internal/presenter"
	"fyyur/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

var isoMillisZ = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

func listingAt(id int, d time.Duration) *model.ShowListing {
	start := ref.Add(d)
	return &model.ShowListing{
		Show:            model.Show{ID: id, VenueID: 1, ArtistID: 4, StartTime: &start},
		VenueName:       "The Musical Hop",
		VenueImageLink:  "https://example.test/hop.jpg",
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.test/gnp.jpg",
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Run("MillisecondsAndZ", func(t *testing.T) {
		ts := time.Date(2019, 5, 21, 21, 30, 0, 123456789, time.UTC)

		assert.Equal(t, "2019-05-21T21:30:00.123Z", presenter.FormatTimestamp(ts))
	})

	t.Run("AlwaysThreeDigits", func(t *testing.T) {
		ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

		got := presenter.FormatTimestamp(ts)

		assert.Equal(t, "2019-05-21T21:30:00.000Z", got)
		assert.Regexp(t, isoMillisZ, got)
	})

	t.Run("ConvertsToUTC", func(t *testing.T) {
		taipei := time.FixedZone("CST", 8*60*60)
		ts := time.Date(2019, 5, 22, 5, 30, 0, 0, taipei)

		assert.Equal(t, "2019-05-21T21:30:00.000Z", presenter.FormatTimestamp(ts))
	})
}

func TestVenueDetail(t *testing.T) {
	t.Run("PastAndUpcoming", func(t *testing.T) {
		venue := &model.Venue{ID: 1, Name: "The Musical Hop", Genres: []string{"Jazz"}, CreatedAt: ref}
		shows := schedule.Partition(ref, []*model.ShowListing{
			listingAt(1, -time.Hour),
			listingAt(2, time.Hour),
		})

		view := presenter.VenueDetail(venue, shows)

		assert.Equal(t, 1, view.PastShowsCount)
		assert.Equal(t, 1, view.UpcomingShowsCount)
		require.Len(t, view.UpcomingShows, 1)
		upcoming := view.UpcomingShows[0]
		assert.Equal(t, 4, upcoming.ArtistID)
		assert.Equal(t, "Guns N Petals", upcoming.ArtistName)
		assert.Equal(t, "https://example.test/gnp.jpg", upcoming.ArtistImageLink)
		assert.True(t, strings.HasSuffix(upcoming.StartTime, "Z"))
		assert.Regexp(t, isoMillisZ, upcoming.StartTime)
		assert.Equal(t, "2026-05-01T20:00:00.000Z", view.CreatedDate)
	})

	t.Run("CountsPresentWhenEmpty", func(t *testing.T) {
		venue := &model.Venue{ID: 2, Name: "Empty Hall"}

		view := presenter.VenueDetail(venue, schedule.Partition[*model.ShowListing](ref, nil))

		assert.Equal(t, 0, view.PastShowsCount)
		assert.Equal(t, 0, view.UpcomingShowsCount)
		assert.NotNil(t, view.PastShows)
		assert.NotNil(t, view.UpcomingShows)
		assert.NotNil(t, view.Genres)
		assert.Empty(t, view.CreatedDate)
	})

	t.Run("SeekingDescription", func(t *testing.T) {
		seeking := &model.Venue{ID: 1, SeekingTalent: true, SeekingDescription: "Looking for jazz acts"}
		notSeeking := &model.Venue{ID: 2, SeekingTalent: false, SeekingDescription: "left over"}

		assert.Equal(t, "Looking for jazz acts", presenter.VenueDetail(seeking, schedule.Result[*model.ShowListing]{}).SeekingDescription)
		assert.Empty(t, presenter.VenueDetail(notSeeking, schedule.Result[*model.ShowListing]{}).SeekingDescription)
	})
}

func TestArtistDetail(t *testing.T) {
	artist := &model.Artist{ID: 4, Name: "Guns N Petals", SeekingVenue: true, SeekingDescription: "Looking for shows"}
	shows := schedule.Partition(ref, []*model.ShowListing{
		listingAt(1, -2*time.Hour),
		listingAt(2, -time.Hour),
		listingAt(3, 0),
	})

	view := presenter.ArtistDetail(artist, shows)

	assert.Equal(t, 2, view.PastShowsCount)
	assert.Equal(t, 1, view.UpcomingShowsCount)
	require.Len(t, view.PastShows, 2)
	assert.Equal(t, 1, view.PastShows[0].VenueID)
	assert.Equal(t, "The Musical Hop", view.PastShows[0].VenueName)
	assert.Equal(t, "https://example.test/hop.jpg", view.PastShows[0].VenueImageLink)
	assert.Equal(t, "2026-05-01T20:00:00.000Z", view.UpcomingShows[0].StartTime)
	assert.Equal(t, "Looking for shows", view.SeekingDescription)
}

func TestShowList(t *testing.T) {
	listings := []*model.ShowListing{listingAt(1, time.Hour), {Show: model.Show{ID: 2, VenueID: 3, ArtistID: 5}}}

	views := presenter.ShowList(listings)

	require.Len(t, views, 2)
	assert.Equal(t, model.ShowView{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.test/gnp.jpg",
		StartTime:       "2026-05-01T21:00:00.000Z",
	}, views[0])
	assert.Empty(t, views[1].StartTime)
}

func TestSummaries(t *testing.T) {
	venues := presenter.VenueSummaries([]*model.Venue{{ID: 1, Name: "A"}})
	artists := presenter.ArtistSummaries([]*model.Artist{{ID: 2, Name: "B"}})

	assert.Equal(t, []model.VenueSummary{{ID: 1, Name: "A"}}, venues)
	assert.Equal(t, []model.ArtistSummary{{ID: 2, Name: "B"}}, artists)
	assert.NotNil(t, presenter.VenueSummaries(nil))
}

func TestFormatDisplay(t *testing.T) {
	value := "2019-05-21T21:30:00.000Z"

	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", presenter.FormatDisplay(value))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", presenter.FormatDisplay(value, "medium"))
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", presenter.FormatDisplay(value, "full"))
	assert.Equal(t, "not a date", presenter.FormatDisplay("not a date"))

	parsed, err := presenter.ParseTimestamp(value)
	require.NoError(t, err)
	assert.Equal(t, value, presenter.FormatTimestamp(parsed))
}
