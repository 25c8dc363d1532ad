package usecase

import (
	"context"
	"strings"
	"testing"

	"video-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGenreService() GenreService {
	return NewGenreService(newFakeGenreRepo(), zap.NewNop())
}

func TestGenreCreateThenRead(t *testing.T) {
	service := newGenreService()

	created, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: "genre1"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := service.GetGenreByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := service.GetGenres(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenreNameBounds(t *testing.T) {
	service := newGenreService()

	tests := []struct {
		name  string
		input string
	}{
		{"too short", "abcd"},
		{"too long", strings.Repeat("x", 51)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: tt.input})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestGenreMissingIDs(t *testing.T) {
	service := newGenreService()

	for _, id := range []string{"1", uuid.NewString()} {
		_, err := service.GetGenreByID(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "genre not found")

		_, err = service.DeleteGenre(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "genre not found")
	}
}

func TestGenreUpdate(t *testing.T) {
	service := newGenreService()

	created, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: "genre1"})
	require.NoError(t, err)

	updated, err := service.UpdateGenre(context.Background(), created.ID, &request.GenreRequest{Name: "genre2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "genre2", updated.Name)
}
