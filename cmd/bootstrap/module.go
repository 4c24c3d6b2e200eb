package bootstrap

import (
	"salon-loyalty/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	QRModule,
	RealtimeModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
