package service

import (
	"context"
	"fmt"

	"ergg/internal/api"
	"ergg/internal/constants"
	"ergg/internal/domain"

	"github.com/rs/zerolog"
)

type SeasonService struct {
	bser   *api.BSERClient
	logger zerolog.Logger
}

func NewSeasonService(bser *api.BSERClient, logger zerolog.Logger) *SeasonService {
	return &SeasonService{bser: bser, logger: logger}
}

func (s *SeasonService) All(ctx context.Context) ([]domain.Season, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bser.GetSeasons(apiCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch season data")
		return nil, fmt.Errorf("failed to fetch seasons: %w", err)
	}
	return resp.Data, nil
}

func (s *SeasonService) Current(ctx context.Context) (*domain.Season, error) {
	seasons, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range seasons {
		if seasons[i].IsCurrent == 1 {
			return &seasons[i], nil
		}
	}
	return nil, fmt.Errorf("current season: %w", ErrNotFound)
}
