package service

import (
	"context"

	"ergg/internal/config"
	"ergg/internal/constants"
	"ergg/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type GameDetailFetcher interface {
	GameRoster(ctx context.Context, gameID int64) ([]domain.Participant, error)
}

// Enricher attaches the user's post-game rating and rating delta to each
// game of a list by reading that game's full roster.
type Enricher struct {
	fetcher GameDetailFetcher
	limit   int
	logger  zerolog.Logger
}

func NewEnricher(fetcher GameDetailFetcher, cfg *config.Config, logger zerolog.Logger) *Enricher {
	limit := cfg.EnrichConcurrency
	if limit < 1 {
		limit = 1
	}
	return &Enricher{fetcher: fetcher, limit: limit, logger: logger}
}

// Enrich never fails: a game whose roster cannot be fetched, or does not
// contain userNum, keeps nil Rating and RatingChange. Output order matches
// the input.
func (e *Enricher) Enrich(ctx context.Context, userNum int64, games []domain.GameSummary) []domain.EnrichedGame {
	out := make([]domain.EnrichedGame, len(games))
	if len(games) == 0 {
		return out
	}

	g := new(errgroup.Group)
	g.SetLimit(e.limit)

	for i, game := range games {
		i, game := i, game
		out[i].GameSummary = game
		g.Go(func() error {
			entry, err := e.findEntry(ctx, userNum, game.GameID)
			if err != nil {
				e.logger.Warn().
					Err(err).
					Int64("user_num", userNum).
					Int64("game_id", game.GameID).
					Msg("game enrichment unavailable")
				return nil
			}
			rating, change := entry.MMRAfter, entry.MMRGain
			out[i].Rating = &rating
			out[i].RatingChange = &change
			return nil
		})
	}

	// workers only ever return nil
	_ = g.Wait()

	e.logger.Debug().Int64("user_num", userNum).Int("game_count", len(games)).Msg("games enriched")
	return out
}

func (e *Enricher) findEntry(ctx context.Context, userNum, gameID int64) (*domain.Participant, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	roster, err := e.fetcher.GameRoster(apiCtx, gameID)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].UserNum == userNum {
			return &roster[i], nil
		}
	}
	return nil, ErrNotFound
}
