package tier

import (
	"fmt"
	"math"

	"ergg/internal/constants"
)

type Key string

const (
	Iron      Key = "iron"
	Bronze    Key = "bronze"
	Silver    Key = "silver"
	Gold      Key = "gold"
	Platinum  Key = "platinum"
	Diamond   Key = "diamond"
	Meteorite Key = "meteorite"
	Mithril   Key = "mithril"
	Demigod   Key = "demigod"
	Eternity  Key = "eternity"
	Unrank    Key = "unrank"
)

// UnknownRank is passed as the rank position when the player has no
// leaderboard placement, so neither top override can fire.
const UnknownRank = math.MaxInt

const (
	DefaultEternityCutoff = 30
	DefaultDemigodCutoff  = 1000

	// rating floor the top-rank tiers measure their points from
	topTierBase = 7800
)

type Descriptor struct {
	Key       Key    `json:"key"`
	Name      string `json:"name"`
	Division  string `json:"division,omitempty"`
	Score     int    `json:"score"`
	ScoreText string `json:"scoreText"`
}

type band struct {
	low, high int // inclusive; high < 0 means unbounded
}

type major struct {
	key   Key
	name  string
	bands []band // lowest first
}

var divisionNames = []string{"IV", "III", "II", "I"}

var localizedNames = map[Key]string{
	Iron:      "아이언",
	Bronze:    "브론즈",
	Silver:    "실버",
	Gold:      "골드",
	Platinum:  "플래티넘",
	Diamond:   "다이아몬드",
	Meteorite: "메테오라이트",
	Mithril:   "미스릴",
	Demigod:   "데미갓",
	Eternity:  "이터니티",
	Unrank:    "언랭크",
}

// majors is ordered lowest tier first.
var majors = []major{
	divided(Iron, 0, 150),
	divided(Bronze, 600, 200),
	divided(Silver, 1400, 250),
	divided(Gold, 2400, 300),
	divided(Platinum, 3600, 350),
	divided(Diamond, 5000, 350),
	{key: Meteorite, name: localizedNames[Meteorite], bands: []band{{6400, 7099}}},
	{key: Mithril, name: localizedNames[Mithril], bands: []band{{7100, -1}}},
}

func divided(key Key, low, width int) major {
	bands := make([]band, len(divisionNames))
	for i := range bands {
		start := low + i*width
		bands[i] = band{low: start, high: start + width - 1}
	}
	return major{key: key, name: localizedNames[key], bands: bands}
}

func (b band) contains(rating int) bool {
	return rating >= b.low && (b.high < 0 || rating <= b.high)
}

// Classifier maps a rating and leaderboard position onto a tier. The zero
// value is not usable; build one with NewClassifier.
type Classifier struct {
	eternityCutoff int
	demigodCutoff  int
}

func NewClassifier(eternityCutoff, demigodCutoff int) *Classifier {
	return &Classifier{eternityCutoff: eternityCutoff, demigodCutoff: demigodCutoff}
}

var defaultClassifier = NewClassifier(DefaultEternityCutoff, DefaultDemigodCutoff)

// Classify uses the default rank cutoffs.
func Classify(rating, rankPosition int) Descriptor {
	return defaultClassifier.Classify(rating, rankPosition)
}

func (c *Classifier) Classify(rating, rankPosition int) Descriptor {
	switch {
	case rankPosition <= c.eternityCutoff:
		return topTier(Eternity, rating)
	case rankPosition <= c.demigodCutoff:
		return topTier(Demigod, rating)
	}

	if rating < 0 {
		return Unranked()
	}

	for i := len(majors) - 1; i >= 0; i-- {
		m := majors[i]
		for d := len(m.bands) - 1; d >= 0; d-- {
			b := m.bands[d]
			if !b.contains(rating) {
				continue
			}
			desc := Descriptor{
				Key:   m.key,
				Name:  m.name,
				Score: rating - b.low,
			}
			if len(m.bands) == len(divisionNames) {
				desc.Division = divisionNames[d]
				desc.Name = m.name + " " + desc.Division
			}
			desc.ScoreText = scoreText(desc.Score)
			return desc
		}
	}

	return Unranked()
}

func topTier(key Key, rating int) Descriptor {
	score := rating - topTierBase
	return Descriptor{
		Key:       key,
		Name:      localizedNames[key],
		Score:     score,
		ScoreText: scoreText(score),
	}
}

// Unranked is the descriptor for a player with no rating to classify.
func Unranked() Descriptor {
	return Descriptor{
		Key:       Unrank,
		Name:      localizedNames[Unrank],
		ScoreText: scoreText(0),
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("%d점", score)
}

// AssetPath is the static image path for a tier key.
func AssetPath(key Key) string {
	return fmt.Sprintf(constants.RankTierPathFmt, key)
}
