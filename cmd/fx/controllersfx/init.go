package controllersfx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewDecisionController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewNarrativeController),
)
