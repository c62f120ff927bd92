package repository

import (
	"context"
	"errors"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository interface {
	List(ctx context.Context) ([]*model.Venue, error)
	Recent(ctx context.Context, limit int) ([]*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	// SearchByName returns one row per show of every venue whose name contains term.
	SearchByName(ctx context.Context, term string) ([]model.SearchRow, error)

	// Transaction methods
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error)
	ReplaceGenres(ctx context.Context, id int, genres []string) error
	Delete(ctx context.Context, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `
	id, name,
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(address, ''), COALESCE(phone, ''),
	COALESCE(website, ''), COALESCE(facebook_link, ''), COALESCE(image_link, ''),
	seeking_talent, COALESCE(seeking_description, ''),
	created_at, updated_at
`

func scanVenue(row pgx.Row) (*model.Venue, error) {
	var venue model.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.Website,
		&venue.FacebookLink,
		&venue.ImageLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepositoryImpl) queryVenues(ctx context.Context, query string, args ...any) ([]*model.Venue, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context) ([]*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	venues, err := r.queryVenues(ctx, query)
	if err != nil {
		return nil, storeErr("venue.list", err)
	}
	return venues, nil
}

func (r *VenueRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at DESC, id DESC LIMIT $1`

	venues, err := r.queryVenues(ctx, query, limit)
	if err != nil {
		return nil, storeErr("venue.recent", err)
	}
	return venues, nil
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, storeErr("venue.find", err)
	}

	venue.Genres, err = venueGenres.load(ctx, r.pool, venue.ID)
	if err != nil {
		return nil, storeErr("venue.find", err)
	}

	return venue, nil
}

func (r *VenueRepositoryImpl) FindIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `SELECT id FROM venues WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrVenueNotFound
		}
		return 0, storeErr("venue.find_by_name", err)
	}
	return id, nil
}

func (r *VenueRepositoryImpl) SearchByName(ctx context.Context, term string) ([]model.SearchRow, error) {
	query := `
		SELECT v.id, v.name, s.start_time
		FROM venues v
		JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1
		ORDER BY v.id, s.id
	`
	rows, err := r.pool.Query(ctx, query, containsPattern(term))
	if err != nil {
		return nil, storeErr("venue.search", err)
	}
	out, err := scanSearchRows(rows)
	if err != nil {
		return nil, storeErr("venue.search", err)
	}
	return out, nil
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (
			name, city, state, address, phone, website, facebook_link, image_link,
			seeking_talent, seeking_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
		RETURNING ` + venueColumns

	var created *model.Venue
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		created, err = scanVenue(tx.QueryRow(ctx, query,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
			venue.Website, venue.FacebookLink, venue.ImageLink,
			venue.SeekingTalent, venue.SeekingDescription,
		))
		if err != nil {
			return err
		}
		if err := venueGenres.replace(ctx, tx, created.ID, venue.Genres); err != nil {
			return err
		}
		created.Genres = venue.Genres
		return nil
	})
	if err != nil {
		return nil, storeErr("venue.create", err)
	}

	return created, nil
}

// Update overwrites every column and replaces the genre tags in the same transaction,
// through the same locked path as ReplaceGenres.
func (r *VenueRepositoryImpl) Update(ctx context.Context, id int, venue *model.Venue) (*model.Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, website = $6,
			facebook_link = $7, image_link = $8, seeking_talent = $9,
			seeking_description = NULLIF($10, ''), updated_at = now()
		WHERE id = $11
		RETURNING ` + venueColumns

	var updated *model.Venue
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanVenue(tx.QueryRow(ctx, query,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
			venue.Website, venue.FacebookLink, venue.ImageLink,
			venue.SeekingTalent, venue.SeekingDescription, id,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrVenueNotFound
			}
			return err
		}
		if err := venueGenres.replaceLocked(ctx, tx, id, venue.Genres); err != nil {
			return err
		}
		updated.Genres = venue.Genres
		return nil
	})
	if err != nil {
		return nil, storeErr("venue.update", err)
	}

	return updated, nil
}

func (r *VenueRepositoryImpl) ReplaceGenres(ctx context.Context, id int, genres []string) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return venueGenres.replaceLocked(ctx, tx, id, genres)
	})
	return storeErr("venue.replace_genres", err)
}

// Delete removes the venue and its genre tags. It is rejected with ErrHasShows while any
// show still references the venue.
func (r *VenueRepositoryImpl) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var shows int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, id).Scan(&shows); err != nil {
			return err
		}
		if shows > 0 {
			return apperrors.ErrHasShows
		}

		result, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return apperrors.ErrHasShows
			}
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrVenueNotFound
		}
		return nil
	})
	return storeErr("venue.delete", err)
}
