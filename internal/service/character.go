package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ergg/internal/config"
	"ergg/internal/constants"
	"ergg/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type CharacterLister interface {
	Characters(ctx context.Context) ([]domain.Character, error)
}

// CharacterDirectory is the in-memory character code -> name table. It is
// empty until the first successful Refresh; a failed refresh keeps the
// previous table.
type CharacterDirectory struct {
	source CharacterLister
	logger zerolog.Logger

	mu          sync.RWMutex
	names       map[int]string
	generation  string
	refreshedAt time.Time
}

func NewCharacterDirectory(source CharacterLister, logger zerolog.Logger) *CharacterDirectory {
	return &CharacterDirectory{
		source: source,
		logger: logger,
		names:  map[int]string{},
	}
}

func (d *CharacterDirectory) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RefreshTimeout)
	defer cancel()

	chars, err := d.source.Characters(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch characters: %w", err)
	}

	names := make(map[int]string, len(chars))
	for _, c := range chars {
		names[c.Code] = c.Name
	}

	gen, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate nanoid: %w", err)
	}

	d.mu.Lock()
	d.names = names
	d.generation = gen
	d.refreshedAt = time.Now()
	d.mu.Unlock()

	d.logger.Info().Int("count", len(names)).Str("generation", gen).Msg("character data cached")
	return nil
}

func (d *CharacterDirectory) Name(code int) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok := d.names[code]
	return name, ok
}

// All returns the table sorted by code.
func (d *CharacterDirectory) All() []domain.Character {
	d.mu.RLock()
	out := make([]domain.Character, 0, len(d.names))
	for code, name := range d.names {
		out = append(out, domain.Character{Code: code, Name: name})
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (d *CharacterDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.names)
}

// Generation identifies the current table; it changes on every successful
// refresh and is empty before the first one.
func (d *CharacterDirectory) Generation() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.generation
}

func (d *CharacterDirectory) RefreshedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.refreshedAt
}

// Run refreshes every interval until ctx is done.
func (d *CharacterDirectory) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Refresh(ctx); err != nil {
				d.logger.Warn().Err(err).Msg("periodic character refresh failed")
			}
		}
	}
}

// RegisterCharacterRefresh loads the table at startup and, when configured,
// keeps refreshing it for the lifetime of the app. A failed initial load is
// logged, not fatal.
func RegisterCharacterRefresh(lc fx.Lifecycle, dir *CharacterDirectory, cfg *config.Config, logger zerolog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := dir.Refresh(startCtx); err != nil {
				logger.Error().Err(err).Msg("error fetching character data")
			}
			if cfg.CharacterRefreshInterval <= 0 {
				close(done)
				return nil
			}
			go func() {
				defer close(done)
				dir.Run(ctx, cfg.CharacterRefreshInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
