package components

import (
	"context"
	"log/slog"

	"travel-deals/internal/pkg/config"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewWorkerRunner),
	fx.Invoke(startWorkers),
)

func NewWorkerRunner(cfg config.Config, relay commands.OutboxRelayCommands, expiry commands.OrderExpiryCommands) *worker.Runner {
	return worker.NewRunner(
		worker.OutboxRelayJob(relay, cfg.Worker.OutboxInterval),
		worker.OrderExpiryJob(expiry, cfg.Worker.OrderSweepEvery),
	)
}

func startWorkers(lc fx.Lifecycle, runner *worker.Runner, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("バックグラウンドジョブを開始します")
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("バックグラウンドジョブを停止します")
			return runner.Stop(ctx)
		},
	})
}
