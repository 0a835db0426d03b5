package bootstrap

import (
	"log/slog"

	"loyalty-wallet/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logWalletSetup),
)

// logWalletSetup reports which wallet paths this instance can serve.
func logWalletSetup(cfg config.Config, logger *slog.Logger) {
	logger.Info("wallet configuration",
		slog.String("pass_type_id", cfg.Apple.PassTypeIdentifier),
		slog.Bool("web_service", cfg.Apple.WebServiceURL != ""),
		slog.Bool("google_wallet", cfg.Google.Configured()),
		slog.Bool("passkit_strict_auth", cfg.PassKit.StrictAuth),
		slog.Bool("asset_cache", cfg.Assets.CacheTTL > 0),
	)
}
