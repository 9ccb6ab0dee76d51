package components

import (
	"helperhub/internal/infra/repository"
	"helperhub/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAccountRepository,
			fx.As(new(usecase.AccountRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)
