package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// withTx runs fn in one transaction; any error rolls it back.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var domainErrors = []error{
	apperrors.ErrVenueNotFound,
	apperrors.ErrArtistNotFound,
	apperrors.ErrInvalidInput,
	apperrors.ErrInvalidShowReference,
	apperrors.ErrDuplicateName,
	apperrors.ErrHasShows,
}

// storeErr passes domain errors through, maps a unique violation to ErrDuplicateName and
// wraps anything else in a StoreError.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, de := range domainErrors {
		if errors.Is(err, de) {
			return err
		}
	}
	if pgCode(err) == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateName)
	}
	return &apperrors.StoreError{Op: op, Err: err}
}

// containsPattern builds an ILIKE pattern matching term as a literal substring.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// genreTable describes one genre tag table, its owner column and the owner's table.
type genreTable struct {
	table      string
	owner      string
	ownerTable string
	notFound   error
}

var (
	venueGenres  = genreTable{table: "venue_genres", owner: "venue_id", ownerTable: "venues", notFound: apperrors.ErrVenueNotFound}
	artistGenres = genreTable{table: "artist_genres", owner: "artist_id", ownerTable: "artists", notFound: apperrors.ErrArtistNotFound}
)

func (g genreTable) load(ctx context.Context, q querier, ownerID int) ([]string, error) {
	query := fmt.Sprintf(`SELECT category FROM %s WHERE %s = $1 ORDER BY id`, g.table, g.owner)
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	genres, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// replace deletes every tag of the owner and inserts genres in their place.
func (g genreTable) replace(ctx context.Context, tx pgx.Tx, ownerID int, genres []string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, g.table, g.owner)
	if _, err := tx.Exec(ctx, query, ownerID); err != nil {
		return err
	}
	if len(genres) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(genres))
	for _, genre := range genres {
		rows = append(rows, []any{genre, ownerID})
	}
	_, err := tx.CopyFrom(ctx, pgx.Identifier{g.table}, []string{"category", g.owner}, pgx.CopyFromRows(rows))
	return err
}

// replaceLocked locks the owner row, then replaces its tags. A missing owner is notFound.
func (g genreTable) replaceLocked(ctx context.Context, tx pgx.Tx, ownerID int, genres []string) error {
	// 先鎖住 owner，避免同時替換 genres 交錯
	var locked int
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, g.ownerTable)
	if err := tx.QueryRow(ctx, query, ownerID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return g.notFound
		}
		return err
	}
	return g.replace(ctx, tx, ownerID, genres)
}

func scanSearchRows(rows pgx.Rows) ([]model.SearchRow, error) {
	defer rows.Close()

	out := make([]model.SearchRow, 0)
	for rows.Next() {
		var row model.SearchRow
		if err := rows.Scan(&row.ID, &row.Name, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
