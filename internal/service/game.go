package service

import (
	"context"
	"fmt"

	"ergg/internal/api"
	"ergg/internal/constants"
	"ergg/internal/domain"

	"github.com/rs/zerolog"
)

type GameService struct {
	bser       *api.BSERClient
	characters *CharacterDirectory
	logger     zerolog.Logger
}

func NewGameService(bser *api.BSERClient, characters *CharacterDirectory, logger zerolog.Logger) *GameService {
	return &GameService{bser: bser, characters: characters, logger: logger}
}

// Detail returns the full roster of a game with character names resolved
// from the directory. Unknown codes leave the name empty.
func (s *GameService) Detail(ctx context.Context, gameID int64) (*domain.GameDetail, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	roster, err := s.bser.GameRoster(apiCtx, gameID)
	if err != nil {
		s.logger.Error().Err(err).Int64("game_id", gameID).Msg("failed to fetch match results")
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}

	detail := &domain.GameDetail{
		GameID:       gameID,
		Participants: make([]domain.GameParticipant, len(roster)),
	}
	for i, p := range roster {
		detail.Participants[i].Participant = p
		if name, ok := s.characters.Name(p.CharacterNum); ok {
			detail.Participants[i].CharacterName = name
			detail.Participants[i].CharacterImage = fmt.Sprintf(constants.CharacterPathFmt, name)
		}
	}

	s.logger.Debug().Int64("game_id", gameID).Int("participants", len(roster)).Msg("game fetched")
	return detail, nil
}
