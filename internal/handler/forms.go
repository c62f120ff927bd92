package handler

import (
	"time"

	"fyyur/internal/model"
)

const showTimeLayout = "2006-01-02 15:04:05"

type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=200"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required,state"`
	Address            string   `form:"address" json:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" binding:"omitempty,max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"omitempty,url"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f VenueForm) ToModel() *model.Venue {
	return &model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormFrom(v *model.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=200"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required,state"`
	Phone              string   `form:"phone" json:"phone" binding:"omitempty,max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"omitempty,url"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) ToModel() *model.Artist {
	return &model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFrom(a *model.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  int       `form:"artist_id" json:"artist_id" binding:"required,gt=0"`
	VenueID   int       `form:"venue_id" json:"venue_id" binding:"required,gt=0"`
	StartTime time.Time `form:"start_time" json:"start_time" binding:"required" time_format:"2006-01-02 15:04:05" time_utc:"1"`
}

func (f ShowForm) ToModel() *model.Show {
	start := f.StartTime
	return &model.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: &start,
	}
}
