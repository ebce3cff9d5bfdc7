package planner_fx

import (
	"go.uber.org/fx"

	"travo/internal/api/controllers"
	"travo/internal/services"
	"travo/pkg/memcache"
	"travo/pkg/utils"
)

var Module = fx.Provide(
	provideFallbackSynthesizer,
	providePlannerService,
	providePlannerController)

func provideFallbackSynthesizer() *services.FallbackSynthesizer {
	return services.NewFallbackSynthesizer(nil)
}

func providePlannerService(textgen utils.TextGenerationClient, fallback *services.FallbackSynthesizer) services.PlannerServiceInterface {
	return services.NewPlannerService(textgen, fallback)
}

func providePlannerController(plannerService services.PlannerServiceInterface, handoffStore memcache.TripHandoffStore) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, handoffStore)
}
