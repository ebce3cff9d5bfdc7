package catalog_fx

import (
	"go.uber.org/fx"

	"travo/internal/api/controllers"
	"travo/internal/repositories"
	"travo/internal/services"
	"travo/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideDestinationService,
	provideDestinationController,
	provideItineraryRepo,
	provideItineraryService,
	provideItineraryController)

func provideDestinationRepo() repositories.DestinationRepository {
	return repositories.NewDestinationRepository()
}

func provideDestinationService(destinationRepo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo)
}

func provideDestinationController(destinationService services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService)
}

func provideItineraryRepo() repositories.ItineraryRepository {
	return repositories.NewItineraryRepository()
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	destinationRepo repositories.DestinationRepository,
	textgen utils.TextGenerationClient,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, destinationRepo, textgen)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
