package service

import (
	"context"

	"syahi/internal/models"
	"syahi/internal/music"
	"syahi/internal/observability"

	"go.uber.org/zap"
)

const (
	defaultMusicLimit = 10
	maxMusicLimit     = 25
)

type MusicService struct {
	searcher music.Searcher
}

func NewMusicService(searcher music.Searcher) *MusicService {
	return &MusicService{searcher: searcher}
}

// Search looks up tracks for a bouquet's music attachment.
func (s *MusicService) Search(ctx context.Context, query string, limit int) ([]models.MusicData, error) {
	query = trimmed(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 {
		limit = defaultMusicLimit
	}
	if limit > maxMusicLimit {
		limit = maxMusicLimit
	}

	if s.searcher == nil {
		return nil, models.NewUnavailableError("Music search is not configured", music.ErrUnavailable)
	}
	tracks, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		observability.FromContext(ctx).Warn("music search failed", zap.String("query", query), zap.Error(err))
		return nil, models.NewUnavailableError("Music search is unavailable", err)
	}
	return tracks, nil
}
