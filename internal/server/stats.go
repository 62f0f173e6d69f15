package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"ergg/internal/service"
	"ergg/internal/tier"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// StatsServer exposes the REST surface the web client talks to.
type StatsServer struct {
	users      *service.UserService
	games      *service.GameService
	seasons    *service.SeasonService
	news       *service.NewsService
	characters *service.CharacterDirectory
	classifier *tier.Classifier
	validate   *validator.Validate
	logger     zerolog.Logger
}

func NewStatsServer(
	users *service.UserService,
	games *service.GameService,
	seasons *service.SeasonService,
	news *service.NewsService,
	characters *service.CharacterDirectory,
	classifier *tier.Classifier,
	logger zerolog.Logger,
) *StatsServer {
	return &StatsServer{
		users:      users,
		games:      games,
		seasons:    seasons,
		news:       news,
		characters: characters,
		classifier: classifier,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (s *StatsServer) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/user/{nickname}", s.GetUser)
	mux.HandleFunc("GET /api/user/{userNum}/games", s.GetUserGames)
	mux.HandleFunc("GET /api/user/{userNum}/rank/{seasonId}/{matchingTeamMode}", s.GetUserRank)
	mux.HandleFunc("GET /api/games/{gameId}", s.GetGame)
	mux.HandleFunc("GET /api/character-name/{characterCode}", s.GetCharacterName)
	mux.HandleFunc("GET /api/characters", s.ListCharacters)
	mux.HandleFunc("POST /api/characters/refresh", s.RefreshCharacters)
	mux.HandleFunc("GET /api/season", s.GetSeasons)
	mux.HandleFunc("GET /api/season/current", s.GetCurrentSeason)
	mux.HandleFunc("GET /api/news", s.GetNews)
	mux.HandleFunc("GET /api/tier", s.GetTier)
	mux.HandleFunc("GET /healthz", s.Health)
}

// StaticRoutes serves the image folders under dir at the paths the web
// client expects.
func StaticRoutes(mux *http.ServeMux, dir string) {
	folders := map[string]string{
		"Item":     "Item",
		"Loadout":  "Loadout",
		"RankTier": "Rank Tier",
	}
	for route, folder := range folders {
		prefix := "/images/" + route + "/"
		fs := http.FileServer(http.Dir(filepath.Join(dir, folder)))
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, fs))
	}
}

type nicknameParams struct {
	Nickname string `validate:"required,max=64"`
}

type gamesParams struct {
	UserNum int64 `validate:"gt=0"`
	Next    int64 `validate:"gte=0"`
}

type rankParams struct {
	UserNum  int64 `validate:"gt=0"`
	SeasonID int   `validate:"gte=0"`
	TeamMode int   `validate:"oneof=1 2 3"`
}

type gameParams struct {
	GameID int64 `validate:"gt=0"`
}

type newsParams struct {
	Type string `validate:"omitempty,oneof=news patchnote esports event broadcasts"`
}

type tierParams struct {
	Rating int `validate:"gte=0"`
	Rank   int `validate:"gte=1"`
}

func (s *StatsServer) GetUser(w http.ResponseWriter, r *http.Request) {
	params := nicknameParams{Nickname: r.PathValue("nickname")}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	user, err := s.users.Lookup(r.Context(), params.Nickname)
	if err != nil {
		writeError(w, r, "Error fetching user number", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *StatsServer) GetUserGames(w http.ResponseWriter, r *http.Request) {
	var params gamesParams
	var err error
	if params.UserNum, err = parseInt64(r.PathValue("userNum"), "userNum"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if next := r.URL.Query().Get("next"); next != "" {
		if params.Next, err = parseInt64(next, "next"); err != nil {
			writeBadRequest(w, err)
			return
		}
	}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	page, err := s.users.Games(r.Context(), params.UserNum, params.Next)
	if err != nil {
		writeError(w, r, "Error fetching user games", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *StatsServer) GetUserRank(w http.ResponseWriter, r *http.Request) {
	var params rankParams
	var err error
	if params.UserNum, err = parseInt64(r.PathValue("userNum"), "userNum"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if params.SeasonID, err = parseInt(r.PathValue("seasonId"), "seasonId"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if params.TeamMode, err = parseInt(r.PathValue("matchingTeamMode"), "matchingTeamMode"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	rank, err := s.users.Rank(r.Context(), params.UserNum, params.SeasonID, params.TeamMode)
	if err != nil {
		writeError(w, r, "Error fetching user rank", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"userRank": rank})
}

func (s *StatsServer) GetGame(w http.ResponseWriter, r *http.Request) {
	var params gameParams
	var err error
	if params.GameID, err = parseInt64(r.PathValue("gameId"), "gameId"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	detail, err := s.games.Detail(r.Context(), params.GameID)
	if err != nil {
		writeError(w, r, "Error fetching match results", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *StatsServer) GetCharacterName(w http.ResponseWriter, r *http.Request) {
	code, err := parseInt(r.PathValue("characterCode"), "characterCode")
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	name, ok := s.characters.Name(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Character not found", Message: "Character not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *StatsServer) ListCharacters(w http.ResponseWriter, r *http.Request) {
	gen := s.characters.Generation()
	etag := strconv.Quote(gen)
	if gen != "" {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"generation": gen,
		"characters": s.characters.All(),
	})
}

func (s *StatsServer) RefreshCharacters(w http.ResponseWriter, r *http.Request) {
	if err := s.characters.Refresh(r.Context()); err != nil {
		writeError(w, r, "Error refreshing character data", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":      s.characters.Len(),
		"generation": s.characters.Generation(),
	})
}

func (s *StatsServer) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.seasons.All(r.Context())
	if err != nil {
		writeError(w, r, "Error fetching season data", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": seasons})
}

func (s *StatsServer) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	season, err := s.seasons.Current(r.Context())
	if err != nil {
		writeError(w, r, "Error fetching current season", err)
		return
	}
	writeJSON(w, http.StatusOK, season)
}

func (s *StatsServer) GetNews(w http.ResponseWriter, r *http.Request) {
	params := newsParams{Type: r.URL.Query().Get("type")}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	items, err := s.news.Posts(r.Context(), params.Type)
	if err != nil {
		writeError(w, r, "Error fetching news", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *StatsServer) GetTier(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := tierParams{Rank: tier.UnknownRank}
	var err error
	if params.Rating, err = parseInt(q.Get("rating"), "rating"); err != nil {
		writeBadRequest(w, err)
		return
	}
	if rank := q.Get("rank"); rank != "" {
		if params.Rank, err = parseInt(rank, "rank"); err != nil {
			writeBadRequest(w, err)
			return
		}
	}
	if err := s.validate.Struct(params); err != nil {
		writeBadRequest(w, err)
		return
	}

	desc := s.classifier.Classify(params.Rating, params.Rank)
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":  desc,
		"image": tier.AssetPath(desc.Key),
	})
}

func (s *StatsServer) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":              "ok",
		"characters":          s.characters.Len(),
		"characterGeneration": s.characters.Generation(),
	}
	if at := s.characters.RefreshedAt(); !at.IsZero() {
		resp["charactersRefreshedAt"] = at.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseInt64(raw, name string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func parseInt(raw, name string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}
