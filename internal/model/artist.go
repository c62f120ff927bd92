package model

import "time"

// Artist 表演者模型
type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	Website            string    `json:"website" db:"website"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty" db:"seeking_description"`
	Genres             []string  `json:"genres" db:"-"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

func (a *Artist) Normalize() {
	a.Name = trim(a.Name)
	if !a.SeekingVenue {
		a.SeekingDescription = ""
	}
	a.Genres = dedupeGenres(a.Genres)
}
