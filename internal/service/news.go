package service

import (
	"context"
	"fmt"

	"ergg/internal/api"
	"ergg/internal/constants"
	"ergg/internal/domain"

	"github.com/rs/zerolog"
)

var NewsTypes = []string{"news", "patchnote", "esports", "event", "broadcasts"}

type NewsService struct {
	news   *api.NewsClient
	logger zerolog.Logger
}

func NewNewsService(news *api.NewsClient, logger zerolog.Logger) *NewsService {
	return &NewsService{news: news, logger: logger}
}

func (s *NewsService) Posts(ctx context.Context, postType string) ([]domain.NewsItem, error) {
	if postType == "" {
		postType = constants.DefaultNewsType
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	posts, err := s.news.GetPosts(apiCtx, postType, constants.DefaultNewsPage)
	if err != nil {
		s.logger.Error().Err(err).Str("type", postType).Msg("error fetching posts from API")
		return nil, fmt.Errorf("failed to fetch %s: %w", postType, err)
	}

	items := make([]domain.NewsItem, len(posts))
	for i, p := range posts {
		items[i] = domain.NewsItem{
			Title:    p.Title,
			Link:     firstNonEmpty(p.Link, p.URL),
			ImageURL: firstNonEmpty(p.Thumbnail, p.Image),
			Date:     firstNonEmpty(p.Date, p.CreatedAt),
		}
	}

	s.logger.Debug().Str("type", postType).Int("count", len(items)).Msg("posts fetched")
	return items, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
