package bootstrap

import (
	"context"

	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/infra/realtime"
	"salon-loyalty/internal/pkg/config"
	"salon-loyalty/internal/usecase/shared"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		func(h *realtime.Hub) shared.CheckinNotifier { return h },
		func(cfg config.Config) config.RealtimeConfig { return cfg.Realtime },
	),
)

var QRModule = fx.Module("qrcode",
	fx.Provide(
		NewQRCodec,
	),
)

func NewHub(lc fx.Lifecycle, cfg config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime.WriteTimeout)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}

func NewQRCodec(cfg config.Config) (*qrcode.Codec, error) {
	return qrcode.NewCodec(cfg.QR.PublicOrigin)
}
