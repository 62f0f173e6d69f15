package fx

import (
	"ergg/internal/api"
	"ergg/internal/config"
	"ergg/internal/logger"
	"ergg/internal/server"
	"ergg/internal/service"
	"ergg/internal/tier"

	"go.uber.org/fx"
)

func ProvideClassifier(cfg *config.Config) *tier.Classifier {
	return tier.NewClassifier(cfg.EternityRankCutoff, cfg.DemigodRankCutoff)
}

func ProvideGameDetailFetcher(bser *api.BSERClient) service.GameDetailFetcher {
	return bser
}

func ProvideCharacterLister(bser *api.BSERClient) service.CharacterLister {
	return bser
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api clients
	fx.Provide(api.NewBSERClient),
	fx.Provide(api.NewNewsClient),
	fx.Provide(ProvideGameDetailFetcher),
	fx.Provide(ProvideCharacterLister),
	// svc
	fx.Provide(ProvideClassifier),
	fx.Provide(service.NewEnricher),
	fx.Provide(service.NewCharacterDirectory),
	fx.Provide(service.NewUserService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewSeasonService),
	fx.Provide(service.NewNewsService),
	fx.Invoke(service.RegisterCharacterRefresh),
	// server
	fx.Provide(server.NewStatsServer),
)
