// Package presenter maps entities and partitioned shows into the view records the pages render.
package presenter

import (
	"time"

	"fyyur/internal/model"
	"fyyur/internal/schedule"
)

const timestampLayout = "2006-01-02T15:04:05.000"

// FormatTimestamp renders t in UTC with millisecond precision and a literal Z suffix,
// e.g. 2019-05-21T21:30:00.000Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout) + "Z"
}

func formatStart(s *model.Show) string {
	if s.StartTime == nil {
		return ""
	}
	return FormatTimestamp(*s.StartTime)
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatTimestamp(t)
}

func genres(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func VenueDetail(v *model.Venue, shows schedule.Result[*model.ShowListing]) model.VenueDetailView {
	view := model.VenueDetailView{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		ImageLink:          v.ImageLink,
		CreatedDate:        formatCreated(v.CreatedAt),
		PastShows:          venueShows(shows.Past),
		UpcomingShows:      venueShows(shows.Upcoming),
		PastShowsCount:     shows.PastCount(),
		UpcomingShowsCount: shows.UpcomingCount(),
	}
	if v.SeekingTalent {
		view.SeekingDescription = v.SeekingDescription
	}
	return view
}

func venueShows(listings []*model.ShowListing) []model.VenueShowView {
	out := make([]model.VenueShowView, 0, len(listings))
	for _, l := range listings {
		out = append(out, model.VenueShowView{
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       formatStart(&l.Show),
		})
	}
	return out
}

func ArtistDetail(a *model.Artist, shows schedule.Result[*model.ShowListing]) model.ArtistDetailView {
	view := model.ArtistDetailView{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		ImageLink:          a.ImageLink,
		CreatedDate:        formatCreated(a.CreatedAt),
		PastShows:          artistShows(shows.Past),
		UpcomingShows:      artistShows(shows.Upcoming),
		PastShowsCount:     shows.PastCount(),
		UpcomingShowsCount: shows.UpcomingCount(),
	}
	if a.SeekingVenue {
		view.SeekingDescription = a.SeekingDescription
	}
	return view
}

func artistShows(listings []*model.ShowListing) []model.ArtistShowView {
	out := make([]model.ArtistShowView, 0, len(listings))
	for _, l := range listings {
		out = append(out, model.ArtistShowView{
			VenueID:        l.VenueID,
			VenueName:      l.VenueName,
			VenueImageLink: l.VenueImageLink,
			StartTime:      formatStart(&l.Show),
		})
	}
	return out
}

func ShowList(listings []*model.ShowListing) []model.ShowView {
	out := make([]model.ShowView, 0, len(listings))
	for _, l := range listings {
		out = append(out, model.ShowView{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       formatStart(&l.Show),
		})
	}
	return out
}

func ArtistSummaries(artists []*model.Artist) []model.ArtistSummary {
	out := make([]model.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, model.ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out
}

// VenueSummaries lists venues without show counts (home page).
func VenueSummaries(venues []*model.Venue) []model.VenueSummary {
	out := make([]model.VenueSummary, 0, len(venues))
	for _, v := range venues {
		out = append(out, model.VenueSummary{ID: v.ID, Name: v.Name})
	}
	return out
}
