package components

import (
	"helperhub/internal/pkg/clock"
	"helperhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewProfileUseCase,
		usecase.NewHelperUseCase,
		usecase.NewBookingUseCase,
	),
)
