package domain

import "ergg/internal/tier"

type User struct {
	UserNum  int64  `json:"userNum"`
	Nickname string `json:"nickname"`
}

// GameSummary is one entry of a user's game list. The detail roster of a
// game uses the same shape, one entry per participant.
type GameSummary struct {
	GameID           int64  `json:"gameId"`
	UserNum          int64  `json:"userNum"`
	Nickname         string `json:"nickname"`
	CharacterNum     int    `json:"characterNum"`
	CharacterLevel   int    `json:"characterLevel"`
	GameRank         int    `json:"gameRank"`
	PlayerKill       int    `json:"playerKill"`
	PlayerAssistant  int    `json:"playerAssistant"`
	MonsterKill      int    `json:"monsterKill"`
	MatchingMode     int    `json:"matchingMode"`
	MatchingTeamMode int    `json:"matchingTeamMode"`
	SeasonID         int    `json:"seasonId"`
	MMRBefore        int    `json:"mmrBefore"`
	MMRGain          int    `json:"mmrGain"`
	MMRAfter         int    `json:"mmrAfter"`
	PlayTime         int    `json:"playTime"`
	StartDtm         string `json:"startDtm"`

	// slot -> item code
	Equipment map[string]int `json:"equipment,omitempty"`
}

type Participant = GameSummary

// EnrichedGame carries the user's post-game rating and its delta taken from
// the game's full roster. Both are nil when that lookup failed.
type EnrichedGame struct {
	GameSummary
	Rating       *int `json:"rating"`
	RatingChange *int `json:"ratingChange"`
}

type GameParticipant struct {
	Participant
	CharacterName  string `json:"characterName"`
	CharacterImage string `json:"characterImage,omitempty"`
}

type GameDetail struct {
	GameID       int64             `json:"gameId"`
	Participants []GameParticipant `json:"userGames"`
}

type Rank struct {
	UserNum          int64   `json:"userNum"`
	Nickname         string  `json:"nickname"`
	MMR              int     `json:"mmr"`
	Rank             int     `json:"rank"`
	RankSize         int     `json:"rankSize,omitempty"`
	RankPercent      float64 `json:"rankPercent"`
	SeasonID         int     `json:"seasonId"`
	MatchingMode     int     `json:"matchingMode"`
	MatchingTeamMode int     `json:"matchingTeamMode"`
}

type RankWithTier struct {
	Rank
	Tier      tier.Descriptor `json:"tier"`
	TierImage string          `json:"tierImage"`
}

type Character struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Season struct {
	SeasonID    int    `json:"seasonID"`
	SeasonName  string `json:"seasonName"`
	SeasonStart string `json:"seasonStart"`
	SeasonEnd   string `json:"seasonEnd"`
	IsCurrent   int    `json:"isCurrent"`
}

type NewsItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	ImageURL string `json:"imageUrl"`
	Date     string `json:"date"`
}
