package model

import "time"

// Show links one venue and one artist at a start time. It owns neither side.
type Show struct {
	ID        int        `json:"id" db:"id"`
	VenueID   int        `json:"venue_id" db:"venue_id"`
	ArtistID  int        `json:"artist_id" db:"artist_id"`
	StartTime *time.Time `json:"start_time" db:"start_time"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Start returns the scheduled start, nil when the show is unscheduled.
func (s *Show) Start() *time.Time {
	return s.StartTime
}

// ShowListing is a show joined with the names and images of its venue and artist.
type ShowListing struct {
	Show
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
}

// SearchRow is one (entity, show) pair matched by a name search.
type SearchRow struct {
	ID        int
	Name      string
	StartTime *time.Time
}
