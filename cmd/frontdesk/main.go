package main

import (
	"context"
	"log/slog"
	"os"

	"frontdesk/config"
	"frontdesk/internal/delivery"
	"frontdesk/internal/delivery/shell"
	"frontdesk/internal/domain/service"
	logs "frontdesk/internal/infra/log"
	"frontdesk/internal/infra/qrcode"
	"frontdesk/internal/infra/rest"
	"frontdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startShellParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startShell,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rest.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewBusinessRepository,
			rest.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewAuthGateway,
			newQRCodeService,
			newConsole,
			newLocationBar,
			shell.NewNavigator,
			shell.NewNotifier,
			shell.NewPrompter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newConsole binds the shell presenter to the process streams.
func newConsole() *shell.Console {
	return shell.NewConsole(os.Stdin, os.Stdout)
}

// newLocationBar seeds the visible location from the first argument, the
// place a redirect fragment with the exchange token arrives.
func newLocationBar() *shell.LocationBar {
	startup := ""
	if len(os.Args) > 1 {
		startup = os.Args[1]
	}

	return shell.NewLocationBar(startup)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewBusinessService,
			impl.NewFormService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				shell.NewShell,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startShell(ctx context.Context, params startShellParams) {
	for _, d := range params.Deliveries {
		d := d
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("shell exited with error", slog.Any("error", err))
				os.Exit(1)
			}
			if err := params.Shutdown(); err != nil {
				slog.Error("failed to shut down", slog.Any("error", err))
			}
		}()
	}
}
