package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	RefreshTimeout     = 15 * time.Second
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

const (
	UpstreamMaxConnsPerHost = 100
	UpstreamMaxIdleDuration = 1 * time.Minute
)

const (
	DefaultNewsType  = "news"
	DefaultNewsPage  = 1
	CharacterPathFmt = "/images/Item/Character/%s.png"
	RankTierPathFmt  = "/images/RankTier/%s.png"
)
