// Package listing groups venues for the directory page and folds name-search rows into
// one hit per entity.
package listing

import (
	"time"

	"fyyur/internal/model"
	"fyyur/internal/schedule"
)

// GroupByArea groups venues by (city, state). Groups and the venues inside them keep the
// order in which they are first seen. showsByVenue maps a venue id to its shows; venues
// missing from the map have no upcoming shows.
func GroupByArea(ref time.Time, venues []*model.Venue, showsByVenue map[int][]*model.Show) []model.AreaView {
	areas := make([]model.AreaView, 0)
	index := make(map[model.Area]int)

	for _, v := range venues {
		key := v.Area()
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, model.AreaView{
				City:   v.City,
				State:  v.State,
				Venues: make([]model.VenueSummary, 0, 1),
			})
		}
		areas[i].Venues = append(areas[i].Venues, model.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: schedule.CountUpcoming(ref, showsByVenue[v.ID]),
		})
	}

	return areas
}

// Search folds joined (id, name, start_time) rows into one hit per id, in first-seen order.
// A row counts toward num_upcoming_shows only when its show starts strictly after ref.
func Search(ref time.Time, rows []model.SearchRow) model.SearchResultView {
	res := model.SearchResultView{Data: make([]model.SearchHit, 0)}
	index := make(map[int]int)

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(res.Data)
			index[row.ID] = i
			res.Data = append(res.Data, model.SearchHit{ID: row.ID, Name: row.Name})
		}
		if row.StartTime != nil && schedule.IsUpcomingStrict(ref, *row.StartTime) {
			res.Data[i].NumUpcomingShows++
		}
	}

	res.Count = len(res.Data)
	return res
}

// ShowsByVenue indexes listings by venue id, keeping input order per venue.
func ShowsByVenue(listings []*model.ShowListing) map[int][]*model.Show {
	out := make(map[int][]*model.Show)
	for _, l := range listings {
		out[l.VenueID] = append(out[l.VenueID], &l.Show)
	}
	return out
}
