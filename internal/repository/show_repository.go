package repository

import (
	"context"
	"time"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowRepository interface {
	// List returns every show joined with its venue and artist, oldest id first.
	List(ctx context.Context) ([]*model.ShowListing, error)
	// FindByVenueID returns the shows of one venue. A non-nil after keeps only
	// shows starting strictly after it.
	FindByVenueID(ctx context.Context, venueID int, after *time.Time) ([]*model.ShowListing, error)
	FindByArtistID(ctx context.Context, artistID int, after *time.Time) ([]*model.ShowListing, error)
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{
		pool: pool,
	}
}

const showListingSelect = `
	SELECT s.id, s.venue_id, s.artist_id, s.start_time, s.created_at,
		v.name, COALESCE(v.image_link, ''),
		a.name, COALESCE(a.image_link, '')
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

func (r *ShowRepositoryImpl) queryListings(ctx context.Context, query string, args ...any) ([]*model.ShowListing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*model.ShowListing, 0)
	for rows.Next() {
		var l model.ShowListing
		err := rows.Scan(
			&l.ID,
			&l.VenueID,
			&l.ArtistID,
			&l.StartTime,
			&l.CreatedAt,
			&l.VenueName,
			&l.VenueImageLink,
			&l.ArtistName,
			&l.ArtistImageLink,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *ShowRepositoryImpl) List(ctx context.Context) ([]*model.ShowListing, error) {
	listings, err := r.queryListings(ctx, showListingSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, storeErr("show.list", err)
	}
	return listings, nil
}

func (r *ShowRepositoryImpl) FindByVenueID(ctx context.Context, venueID int, after *time.Time) ([]*model.ShowListing, error) {
	listings, err := r.findBy(ctx, "s.venue_id", venueID, after)
	if err != nil {
		return nil, storeErr("show.find_by_venue", err)
	}
	return listings, nil
}

func (r *ShowRepositoryImpl) FindByArtistID(ctx context.Context, artistID int, after *time.Time) ([]*model.ShowListing, error) {
	listings, err := r.findBy(ctx, "s.artist_id", artistID, after)
	if err != nil {
		return nil, storeErr("show.find_by_artist", err)
	}
	return listings, nil
}

func (r *ShowRepositoryImpl) findBy(ctx context.Context, column string, id int, after *time.Time) ([]*model.ShowListing, error) {
	if after == nil {
		return r.queryListings(ctx, showListingSelect+` WHERE `+column+` = $1 ORDER BY s.id`, id)
	}
	return r.queryListings(ctx, showListingSelect+` WHERE `+column+` = $1 AND s.start_time > $2 ORDER BY s.id`, id, *after)
}

// Create inserts a show. An unknown venue or artist id is reported as ErrInvalidShowReference.
func (r *ShowRepositoryImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, venue_id, artist_id, start_time, created_at
	`

	var created model.Show
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, show.VenueID, show.ArtistID, show.StartTime).Scan(
			&created.ID,
			&created.VenueID,
			&created.ArtistID,
			&created.StartTime,
			&created.CreatedAt,
		)
		if pgCode(err) == pgForeignKeyViolation {
			return apperrors.ErrInvalidShowReference
		}
		return err
	})
	if err != nil {
		return nil, storeErr("show.create", err)
	}

	return &created, nil
}
