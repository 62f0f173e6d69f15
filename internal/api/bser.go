package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"ergg/internal/config"
	"ergg/internal/domain"

	"github.com/valyala/fasthttp"
)

// BSERClient talks to the Eternal Return open API.
type BSERClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client
}

func NewBSERClient(cfg *config.Config) *BSERClient {
	return &BSERClient{
		apiKey:  cfg.BSERAPIKey,
		baseURL: strings.TrimRight(cfg.BSERBaseURL, "/"),
		client:  newHTTPClient(),
	}
}

// Envelope is the status wrapper every open API response carries.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type UserResponse struct {
	Envelope
	User domain.User `json:"user"`
}

type UserGamesResponse struct {
	Envelope
	UserGames []domain.GameSummary `json:"userGames"`
	Next      int64                `json:"next,omitempty"`
}

type GameResponse struct {
	Envelope
	UserGames []domain.Participant `json:"userGames"`
}

type RankResponse struct {
	Envelope
	UserRank domain.Rank `json:"userRank"`
}

type CharactersResponse struct {
	Envelope
	Data []domain.Character `json:"data"`
}

type SeasonsResponse struct {
	Envelope
	Data []domain.Season `json:"data"`
}

func (c *BSERClient) GetUserByNickname(ctx context.Context, nickname string) (*UserResponse, error) {
	u := fmt.Sprintf("%s/v1/user/nickname?query=%s", c.baseURL, url.QueryEscape(nickname))
	return bserRequest[UserResponse](ctx, c, u)
}

func (c *BSERClient) GetUserGames(ctx context.Context, userNum, next int64) (*UserGamesResponse, error) {
	u := fmt.Sprintf("%s/v1/user/games/%d", c.baseURL, userNum)
	if next > 0 {
		u = fmt.Sprintf("%s?next=%d", u, next)
	}
	return bserRequest[UserGamesResponse](ctx, c, u)
}

func (c *BSERClient) GetGame(ctx context.Context, gameID int64) (*GameResponse, error) {
	u := fmt.Sprintf("%s/v1/games/%d", c.baseURL, gameID)
	return bserRequest[GameResponse](ctx, c, u)
}

func (c *BSERClient) GetUserRank(ctx context.Context, userNum int64, seasonID, teamMode int) (*RankResponse, error) {
	u := fmt.Sprintf("%s/v1/rank/%d/%d/%d", c.baseURL, userNum, seasonID, teamMode)
	return bserRequest[RankResponse](ctx, c, u)
}

func (c *BSERClient) GetCharacters(ctx context.Context) (*CharactersResponse, error) {
	return bserRequest[CharactersResponse](ctx, c, c.baseURL+"/v2/data/Character")
}

func (c *BSERClient) GetSeasons(ctx context.Context) (*SeasonsResponse, error) {
	return bserRequest[SeasonsResponse](ctx, c, c.baseURL+"/v2/data/Season")
}

func bserRequest[T any](ctx context.Context, c *BSERClient, u string) (*T, error) {
	body, err := fetch(ctx, c.client, u, map[string]string{"x-api-key": c.apiKey})
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	// a missing code is treated as success
	if env.Code != 0 && env.Code != fasthttp.StatusOK {
		return nil, &Error{StatusCode: env.Code, Message: env.Message}
	}

	return decode[T](body)
}

// GameRoster returns every participant entry of one game.
func (c *BSERClient) GameRoster(ctx context.Context, gameID int64) ([]domain.Participant, error) {
	resp, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return resp.UserGames, nil
}

func (c *BSERClient) Characters(ctx context.Context) ([]domain.Character, error) {
	resp, err := c.GetCharacters(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
