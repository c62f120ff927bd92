package repository_test

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/model"
	"fyyur/internal/repository"
	apperrors "fyyur/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistRepository_CreateAndFind(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	created, err := repo.Create(ctx, &model.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		Genres:             []string{"Rock n Roll"},
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", found.Name)
	assert.Equal(t, "https://www.gunsnpetalsband.com", found.Website)
	assert.True(t, found.SeekingVenue)
	assert.Equal(t, "Looking for shows to perform at in the San Francisco Bay Area!", found.SeekingDescription)
	assert.Equal(t, []string{"Rock n Roll"}, found.Genres)

	_, err = repo.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
}

func TestArtistRepository_List(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	id1 := createTestArtist(t, "Guns N Petals")
	id2 := createTestArtist(t, "Matt Quevado")

	artists, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, id1, artists[0].ID)
	assert.Equal(t, id2, artists[1].ID)
}

func TestArtistRepository_SearchByName(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	venue := createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
	gnp := createTestArtist(t, "Guns N Petals")
	createTestArtist(t, "Matt Quevado")
	sax := createTestArtist(t, "The Wild Sax Band")
	now := time.Now().UTC()
	createTestShow(t, venue, gnp, timePtr(now.Add(-time.Hour)))
	createTestShow(t, venue, sax, timePtr(now.Add(time.Hour)))

	rows, err := repo.SearchByName(ctx, "band")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sax, rows[0].ID)
	assert.Equal(t, "The Wild Sax Band", rows[0].Name)

	rows, err = repo.SearchByName(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestArtistRepository_Update(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	created, err := repo.Create(ctx, &model.Artist{Name: "Matt Quevado", City: "New York", State: "NY", Genres: []string{"Jazz"}})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, &model.Artist{Name: "Matt Quevado", City: "New York", State: "NY", SeekingVenue: true, SeekingDescription: "Anywhere", Genres: []string{"Jazz", "Blues"}})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.SeekingVenue)
	assert.Equal(t, "Anywhere", found.SeekingDescription)
	assert.Equal(t, []string{"Jazz", "Blues"}, found.Genres)

	_, err = repo.Update(ctx, 999, &model.Artist{Name: "Nobody"})
	assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
}

func TestArtistRepository_ReplaceGenres(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	created, err := repo.Create(ctx, &model.Artist{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Genres: []string{"Jazz", "Classical"}})
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceGenres(ctx, created.ID, []string{"Folk"}))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Folk"}, found.Genres)

	// Update goes through the same replacement
	_, err = repo.Update(ctx, created.ID, &model.Artist{Name: "The Wild Sax Band", City: "San Francisco", State: "CA"})
	require.NoError(t, err)
	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Genres)

	assert.ErrorIs(t, repo.ReplaceGenres(ctx, 999, []string{"Jazz"}), apperrors.ErrArtistNotFound)
}

func TestArtistRepository_Delete(t *testing.T) {
	repo := repository.NewArtistRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		id := createTestArtist(t, "Matt Quevado")

		require.NoError(t, repo.Delete(ctx, id))
		assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrArtistNotFound)
	})

	t.Run("HasShows", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		id := createTestArtist(t, "Guns N Petals")
		createTestShow(t, createTestVenue(t, "Hop", "San Francisco", "CA"), id, nil)

		assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrHasShows)
	})
}
