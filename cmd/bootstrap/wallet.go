package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"loyalty-wallet/internal/infra/apns"
	"loyalty-wallet/internal/infra/applepass"
	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/infra/googlewallet"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/usecase"
	"loyalty-wallet/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

// WalletModule wires the pass generators and the push notifier.
var WalletModule = fx.Module("wallet",
	fx.Provide(
		NewS3Client,
		NewAssetFetcher,
		fx.Annotate(
			NewApplePassService,
			fx.As(fx.Self()),
			fx.As(new(usecase.AppleGenerator)),
		),
		fx.Annotate(
			NewGoogleWalletService,
			fx.As(new(usecase.GoogleGenerator)),
		),
		fx.Annotate(
			NewAPNsNotifier,
			fx.As(new(commands.DeviceNotifier)),
		),
	),
)

func NewS3Client(cfg config.Config) (*s3.Client, error) {
	return assets.NewS3Client(context.Background(), cfg.S3)
}

func NewAssetFetcher(cfg config.Config, client *s3.Client, logger *slog.Logger) *assets.Fetcher {
	return assets.NewFetcher(
		assets.NewHTTPSource(&http.Client{Timeout: cfg.Assets.FetchTimeout}),
		logger,
		assets.WithS3(assets.NewS3Source(client)),
		assets.WithImageCache(cfg.Assets.CacheSize, cfg.Assets.CacheTTL),
		assets.WithTimeout(cfg.Assets.FetchTimeout),
	)
}

func NewApplePassService(cfg config.Config, fetcher *assets.Fetcher, logger *slog.Logger) *applepass.Service {
	return applepass.NewService(cfg, fetcher, logger)
}

func NewGoogleWalletService(cfg config.Config, fetcher *assets.Fetcher, logger *slog.Logger) *googlewallet.Service {
	return googlewallet.NewService(cfg, fetcher, logger,
		googlewallet.WithHTTPClient(&http.Client{Timeout: cfg.Assets.FetchTimeout}))
}

func NewAPNsNotifier(cfg config.Config, certs *applepass.Service, logger *slog.Logger) *apns.Notifier {
	return apns.NewNotifier(cfg.Apple.APNsHost, cfg.Apple.PassTypeIdentifier, certs, logger)
}
