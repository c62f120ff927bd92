package model

// VenueSummary is one venue row of the directory page.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaView groups the venues of one (city, state) pair.
type AreaView struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// SearchHit is one distinct entity matched by a name search.
type SearchHit struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResultView struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// ArtistSummary is one row of the artist index.
type ArtistSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VenueShowView is a show on a venue page; it describes the artist.
type VenueShowView struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowView is a show on an artist page; it describes the venue.
type ArtistShowView struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetailView struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `json:"seeking_description,omitempty"`
	ImageLink          string          `json:"image_link"`
	CreatedDate        string          `json:"created_date"`
	PastShows          []VenueShowView `json:"past_shows"`
	UpcomingShows      []VenueShowView `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

type ArtistDetailView struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription string           `json:"seeking_description,omitempty"`
	ImageLink          string           `json:"image_link"`
	CreatedDate        string           `json:"created_date"`
	PastShows          []ArtistShowView `json:"past_shows"`
	UpcomingShows      []ArtistShowView `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ShowView is one row of the /shows page.
type ShowView struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// HomeView lists the most recently created listings.
type HomeView struct {
	Venues  []VenueSummary  `json:"venues"`
	Artists []ArtistSummary `json:"artists"`
}
