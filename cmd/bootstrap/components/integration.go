package components

import (
	"context"
	"log/slog"

	"travel-deals/internal/infra/cache"
	"travel-deals/internal/infra/messaging"
	"travel-deals/internal/infra/oauth"
	"travel-deals/internal/infra/payment"
	"travel-deals/internal/infra/storage"
	"travel-deals/internal/pkg/config"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// IntegrationModule wires the adapters for external systems behind the use case ports.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewPaymentProcessor,
		NewIdentityProvider,
		NewEventPublisher,
		NewImageStore,
		NewCatalogCache,
		fx.Annotate(
			NewEventLedger,
			fx.As(new(commands.ProcessedEventLedger)),
		),
	),
)

func NewPaymentProcessor(cfg config.Config, logger *slog.Logger) commands.PaymentProcessor {
	if !cfg.Payment.Enabled {
		logger.Info("決済は無効です (PAYMENT_ENABLED=false)")
		return payment.NewDisabledProcessor()
	}
	return payment.NewStripeProcessor(cfg.Payment)
}

// NewIdentityProvider returns a nil interface, not a typed nil, when Google is not configured.
func NewIdentityProvider(cfg config.Config) commands.IdentityProvider {
	p := oauth.NewGoogleProvider(cfg.Google)
	if p == nil {
		return nil
	}
	return p
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("KAFKA_BROKERS が未設定のため、イベントはログに出力します")
		return messaging.NewLogPublisher(logger)
	}

	publisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewImageStore(cfg config.Config) commands.ImageStore {
	return storage.NewLocalImageStore(cfg.Upload)
}

type CatalogCacheResult struct {
	fx.Out

	Cache       queries.CatalogCache
	Invalidator commands.CatalogInvalidator
}

func NewCatalogCache(client *redis.Client, cfg config.Config) CatalogCacheResult {
	c := cache.NewCatalogCache(client, cfg.Redis.CatalogTTL)
	return CatalogCacheResult{Cache: c, Invalidator: c}
}

func NewEventLedger(client *redis.Client, cfg config.Config) *cache.EventLedger {
	return cache.NewEventLedger(client, cfg.Redis.WebhookEventTTL)
}
