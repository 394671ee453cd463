package components

import (
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/jwt"
	"travel-deals/internal/usecase"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"
	"travel-deals/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		NewCheckoutCommands,
		commands.NewSettlementCommands,
		commands.NewAdminCommands,
		NewOrderExpiryCommands,
		NewOutboxRelayCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, identity commands.IdentityProvider, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, identity, commands.AuthSettings{
		AdminPassword: cfg.Admin.Password,
	})
}

func NewCheckoutCommands(uow shared.UnitOfWork, processor commands.PaymentProcessor, clk clock.Clock, cfg config.Config) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(uow, processor, clk, commands.CheckoutSettings{
		PublicBaseURL: cfg.Server.PublicBaseURL,
		Currency:      cfg.Payment.Currency,
	})
}

func NewOrderExpiryCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.OrderExpiryCommands {
	return commands.NewOrderExpiryCommands(uow, clk, cfg.Worker.OrderExpiryTTL)
}

func NewOutboxRelayCommands(uow shared.UnitOfWork, publisher commands.EventPublisher, clk clock.Clock, cfg config.Config) commands.OutboxRelayCommands {
	return commands.NewOutboxRelayCommands(uow, publisher, clk, commands.RelaySettings{
		BatchSize:   cfg.Worker.OutboxBatchSize,
		MaxAttempts: cfg.Worker.OutboxMaxAttempts,
	})
}
