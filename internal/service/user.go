package service

import (
	"context"
	"fmt"

	"ergg/internal/api"
	"ergg/internal/constants"
	"ergg/internal/domain"
	"ergg/internal/tier"

	"github.com/rs/zerolog"
)

type UserService struct {
	bser       *api.BSERClient
	enricher   *Enricher
	classifier *tier.Classifier
	logger     zerolog.Logger
}

func NewUserService(bser *api.BSERClient, enricher *Enricher, classifier *tier.Classifier, logger zerolog.Logger) *UserService {
	return &UserService{bser: bser, enricher: enricher, classifier: classifier, logger: logger}
}

type GamesPage struct {
	UserNum int64                 `json:"userNum"`
	Games   []domain.EnrichedGame `json:"userGames"`
	Next    int64                 `json:"next,omitempty"`
}

func (s *UserService) Lookup(ctx context.Context, nickname string) (*domain.User, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("nickname", nickname).Msg("looking up user")

	resp, err := s.bser.GetUserByNickname(apiCtx, nickname)
	if err != nil {
		s.logger.Error().Err(err).Str("nickname", nickname).Msg("failed to fetch user number")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &resp.User, nil
}

// Games fetches one page of the user's games and enriches every entry. Only a
// failure of the list request itself is returned.
func (s *UserService) Games(ctx context.Context, userNum, next int64) (*GamesPage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	resp, err := s.bser.GetUserGames(apiCtx, userNum, next)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_num", userNum).Msg("failed to fetch user games")
		return nil, fmt.Errorf("failed to fetch user games: %w", err)
	}

	games := s.enricher.Enrich(ctx, userNum, resp.UserGames)

	s.logger.Info().Int64("user_num", userNum).Int("count", len(games)).Msg("user games fetched")
	return &GamesPage{UserNum: userNum, Games: games, Next: resp.Next}, nil
}

func (s *UserService) Rank(ctx context.Context, userNum int64, seasonID, teamMode int) (*domain.RankWithTier, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bser.GetUserRank(apiCtx, userNum, seasonID, teamMode)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_num", userNum).
			Int("season_id", seasonID).
			Int("team_mode", teamMode).
			Msg("failed to fetch user rank")
		return nil, fmt.Errorf("failed to fetch user rank: %w", err)
	}

	rank := resp.UserRank
	desc := s.classify(rank)
	return &domain.RankWithTier{
		Rank:      rank,
		Tier:      desc,
		TierImage: tier.AssetPath(desc.Key),
	}, nil
}

func (s *UserService) classify(rank domain.Rank) tier.Descriptor {
	// the open API reports 0/0 for a player with no ranked games this season
	if rank.Rank <= 0 && rank.MMR <= 0 {
		return tier.Unranked()
	}
	position := rank.Rank
	if position <= 0 {
		position = tier.UnknownRank
	}
	return s.classifier.Classify(rank.MMR, position)
}
