package service

import (
	"context"
	"fmt"
	"testing"

	"syahi/internal/models"
	"syahi/internal/music"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searcherFunc func(ctx context.Context, term string, limit int) ([]models.MusicData, error)

func (f searcherFunc) Search(ctx context.Context, term string, limit int) ([]models.MusicData, error) {
	return f(ctx, term, limit)
}

func TestMusicService_Search(t *testing.T) {
	var gotTerm string
	var gotLimit int
	svc := NewMusicService(searcherFunc(func(_ context.Context, term string, limit int) ([]models.MusicData, error) {
		gotTerm, gotLimit = term, limit
		return []models.MusicData{{Title: "Tum Hi Ho"}}, nil
	}))
	ctx := context.Background()

	_, err := svc.Search(ctx, "  ", 5)
	assert.Equal(t, 400, models.StatusFor(err))

	tracks, err := svc.Search(ctx, " arijit ", 0)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
	assert.Equal(t, "arijit", gotTerm)
	assert.Equal(t, 10, gotLimit)

	_, err = svc.Search(ctx, "arijit", 500)
	require.NoError(t, err)
	assert.Equal(t, 25, gotLimit)
}

func TestMusicService_UpstreamFailure(t *testing.T) {
	svc := NewMusicService(searcherFunc(func(context.Context, string, int) ([]models.MusicData, error) {
		return nil, fmt.Errorf("%w: breaker open", music.ErrUnavailable)
	}))
	_, err := svc.Search(context.Background(), "x", 1)
	require.Error(t, err)
	assert.Equal(t, 502, models.StatusFor(err))

	_, err = NewMusicService(nil).Search(context.Background(), "x", 1)
	assert.Equal(t, 502, models.StatusFor(err))
}
