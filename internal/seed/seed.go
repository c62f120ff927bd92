// Package seed loads the sample venues, artists and shows into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/model"
	"fyyur/internal/service"
)

var ErrNotEmpty = errors.New("store already has venues")

// Result counts what Run inserted.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

type showSeed struct {
	venue  string
	artist string
	start  time.Time
}

func Venues() []*model.Venue {
	return []*model.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
		},
	}
}

func Artists() []*model.Artist {
	return []*model.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             []string{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
		},
		{
			Name:         "Matt Quevado",
			Genres:       []string{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    []string{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}
}

func shows() []showSeed {
	at := func(s string) time.Time {
		t, err := time.Parse("2006-01-02 15:04:05", s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return []showSeed{
		{venue: "The Musical Hop", artist: "Guns N Petals", start: at("2019-05-21 21:30:00")},
		{venue: "Park Square Live Music & Coffee", artist: "Matt Quevado", start: at("2019-06-15 23:00:00")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-01 20:00:00")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-08 20:00:00")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-15 20:00:00")},
	}
}

// Run inserts the sample data through the services. It refuses to run when venues already exist.
func Run(ctx context.Context, venues service.VenueService, artists service.ArtistService, showService service.ShowService) (Result, error) {
	var res Result

	existing, err := venues.Recent(ctx)
	if err != nil {
		return res, err
	}
	if len(existing) > 0 {
		return res, ErrNotEmpty
	}

	venueIDs := make(map[string]int)
	for _, v := range Venues() {
		created, err := venues.Create(ctx, v)
		if err != nil {
			return res, fmt.Errorf("venue %s: %w", v.Name, err)
		}
		venueIDs[created.Name] = created.ID
		res.Venues++
	}

	artistIDs := make(map[string]int)
	for _, a := range Artists() {
		created, err := artists.Create(ctx, a)
		if err != nil {
			return res, fmt.Errorf("artist %s: %w", a.Name, err)
		}
		artistIDs[created.Name] = created.ID
		res.Artists++
	}

	for _, s := range shows() {
		start := s.start
		show := &model.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: &start}
		if _, err := showService.Create(ctx, show); err != nil {
			return res, fmt.Errorf("show %s at %s: %w", s.artist, s.venue, err)
		}
		res.Shows++
	}

	return res, nil
}
