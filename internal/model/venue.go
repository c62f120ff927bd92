package model

import "time"

// Venue 場地模型
type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Address            string    `json:"address" db:"address"`
	Phone              string    `json:"phone" db:"phone"`
	Website            string    `json:"website" db:"website"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description,omitempty" db:"seeking_description"`
	Genres             []string  `json:"genres" db:"-"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Normalize trims the name and drops a seeking description that the flag does not allow.
func (v *Venue) Normalize() {
	v.Name = trim(v.Name)
	if !v.SeekingTalent {
		v.SeekingDescription = ""
	}
	v.Genres = dedupeGenres(v.Genres)
}

// Area is the (city, state) pair venues are grouped by.
func (v *Venue) Area() Area {
	return Area{City: v.City, State: v.State}
}

type Area struct {
	City  string
	State string
}
