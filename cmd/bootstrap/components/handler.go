package components

import (
	"context"

	"travel-deals/internal/handler"
	"travel-deals/internal/handler/api"
	"travel-deals/internal/handler/middleware"
	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/jwt"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewSessionSettings,
		NewHealthHandler,
		api.NewAuthHandler,
		NewCatalogHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionSettings(cfg config.Config, jwtService *jwt.Service) api.SessionSettings {
	return api.SessionSettings{
		Cookie:        cfg.Cookie,
		AccessTTL:     jwtService.AccessTokenDuration(),
		RefreshTTL:    jwtService.RefreshTokenDuration(),
		AdminTTL:      jwtService.AdminTokenDuration(),
		PublicBaseURL: cfg.Server.PublicBaseURL,
	}
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *api.HealthHandler {
	return api.NewHealthHandler(
		api.HealthCheck{Name: "postgres", Check: pool.Ping},
		api.HealthCheck{
			Name:     "redis",
			Optional: true,
			Check: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	)
}

func NewCatalogHandler(q queries.CatalogQueries, cfg config.Config) *api.CatalogHandler {
	return api.NewCatalogHandler(q, cfg.Server.PublicBaseURL)
}

func NewAdminHandler(
	cmds commands.AdminCommands,
	auth commands.AuthCommands,
	catalog queries.CatalogQueries,
	settings api.SessionSettings,
	cfg config.Config,
) *api.AdminHandler {
	return api.NewAdminHandler(cmds, auth, catalog, settings, cfg.Upload.MaxBytes)
}

type handlerParams struct {
	fx.In

	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Admin    *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:   p.Health,
		Auth:     p.Auth,
		Catalog:  p.Catalog,
		Checkout: p.Checkout,
		Order:    p.Order,
		Admin:    p.Admin,
	}
}
