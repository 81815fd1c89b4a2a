package destinationfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationService, provideDestinationRepo)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(
	destinationRepo repositories.DestinationRepository,
	embedder utils.NarrativeClientInterface,
	logger *zap.Logger,
) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, embedder, logger)
}
