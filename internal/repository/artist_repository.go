package repository

import (
	"context"
	"errors"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArtistRepository interface {
	List(ctx context.Context) ([]*model.Artist, error)
	Recent(ctx context.Context, limit int) ([]*model.Artist, error)
	FindByID(ctx context.Context, id int) (*model.Artist, error)
	FindIDByName(ctx context.Context, name string) (int, error)
	SearchByName(ctx context.Context, term string) ([]model.SearchRow, error)

	// Transaction methods
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error)
	ReplaceGenres(ctx context.Context, id int, genres []string) error
	Delete(ctx context.Context, id int) error
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

const artistColumns = `
	id, name,
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(phone, ''),
	COALESCE(website, ''), COALESCE(facebook_link, ''), COALESCE(image_link, ''),
	seeking_venue, COALESCE(seeking_description, ''),
	created_at, updated_at
`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var artist model.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Website,
		&artist.FacebookLink,
		&artist.ImageLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) queryArtists(ctx context.Context, query string, args ...any) ([]*model.Artist, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *ArtistRepositoryImpl) List(ctx context.Context) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	artists, err := r.queryArtists(ctx, query)
	if err != nil {
		return nil, storeErr("artist.list", err)
	}
	return artists, nil
}

func (r *ArtistRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY created_at DESC, id DESC LIMIT $1`

	artists, err := r.queryArtists(ctx, query, limit)
	if err != nil {
		return nil, storeErr("artist.recent", err)
	}
	return artists, nil
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, storeErr("artist.find", err)
	}

	artist.Genres, err = artistGenres.load(ctx, r.pool, artist.ID)
	if err != nil {
		return nil, storeErr("artist.find", err)
	}

	return artist, nil
}

func (r *ArtistRepositoryImpl) FindIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `SELECT id FROM artists WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrArtistNotFound
		}
		return 0, storeErr("artist.find_by_name", err)
	}
	return id, nil
}

func (r *ArtistRepositoryImpl) SearchByName(ctx context.Context, term string) ([]model.SearchRow, error) {
	query := `
		SELECT a.id, a.name, s.start_time
		FROM artists a
		JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1
		ORDER BY a.id, s.id
	`
	rows, err := r.pool.Query(ctx, query, containsPattern(term))
	if err != nil {
		return nil, storeErr("artist.search", err)
	}
	out, err := scanSearchRows(rows)
	if err != nil {
		return nil, storeErr("artist.search", err)
	}
	return out, nil
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	query := `
		INSERT INTO artists (
			name, city, state, phone, website, facebook_link, image_link,
			seeking_venue, seeking_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING ` + artistColumns

	var created *model.Artist
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		created, err = scanArtist(tx.QueryRow(ctx, query,
			artist.Name, artist.City, artist.State, artist.Phone,
			artist.Website, artist.FacebookLink, artist.ImageLink,
			artist.SeekingVenue, artist.SeekingDescription,
		))
		if err != nil {
			return err
		}
		if err := artistGenres.replace(ctx, tx, created.ID, artist.Genres); err != nil {
			return err
		}
		created.Genres = artist.Genres
		return nil
	})
	if err != nil {
		return nil, storeErr("artist.create", err)
	}

	return created, nil
}

// Update overwrites every column and replaces the genre tags in the same transaction,
// through the same locked path as ReplaceGenres.
func (r *ArtistRepositoryImpl) Update(ctx context.Context, id int, artist *model.Artist) (*model.Artist, error) {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, website = $5,
			facebook_link = $6, image_link = $7, seeking_venue = $8,
			seeking_description = NULLIF($9, ''), updated_at = now()
		WHERE id = $10
		RETURNING ` + artistColumns

	var updated *model.Artist
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanArtist(tx.QueryRow(ctx, query,
			artist.Name, artist.City, artist.State, artist.Phone,
			artist.Website, artist.FacebookLink, artist.ImageLink,
			artist.SeekingVenue, artist.SeekingDescription, id,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrArtistNotFound
			}
			return err
		}
		if err := artistGenres.replaceLocked(ctx, tx, id, artist.Genres); err != nil {
			return err
		}
		updated.Genres = artist.Genres
		return nil
	})
	if err != nil {
		return nil, storeErr("artist.update", err)
	}

	return updated, nil
}

func (r *ArtistRepositoryImpl) ReplaceGenres(ctx context.Context, id int, genres []string) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		return artistGenres.replaceLocked(ctx, tx, id, genres)
	})
	return storeErr("artist.replace_genres", err)
}

// Delete removes the artist and its genre tags. It is rejected with ErrHasShows while any
// show still references the artist.
func (r *ArtistRepositoryImpl) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var shows int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = $1`, id).Scan(&shows); err != nil {
			return err
		}
		if shows > 0 {
			return apperrors.ErrHasShows
		}

		result, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return apperrors.ErrHasShows
			}
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrArtistNotFound
		}
		return nil
	})
	return storeErr("artist.delete", err)
}
