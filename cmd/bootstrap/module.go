package bootstrap

import (
	"loyalty-wallet/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	WalletModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
