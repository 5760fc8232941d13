package remind

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

// DIParams holds dependencies needed to create a Service via DI.
type DIParams struct {
	dig.In

	Logger *zap.Logger
	Config *Config `optional:"true"`
}

// ProvideService creates a reminder Service for dependency injection.
// Use this when integrating into an app that uses uber-go/dig.
//
// Example:
//
//	container := dig.New()
//	container.Provide(remind.ProvideService)
//	container.Invoke(func(svc *remind.Service) {
//	    svc.Start(ctx)
//	})
func ProvideService(params DIParams) (*Service, error) {
	cfg := params.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	cfg.Logger = params.Logger

	return New(cfg)
}

// RegisterWithContainer registers the reminder Service with a dig
// container.
//
// Example:
//
//	container := dig.New()
//	if err := remind.RegisterWithContainer(container); err != nil {
//	    log.Fatal(err)
//	}
func RegisterWithContainer(container *dig.Container) error {
	return container.Provide(ProvideService)
}

// StartParams holds dependencies for starting the Service via DI.
type StartParams struct {
	dig.In

	Service *Service
	Context context.Context `optional:"true"`
}

// StartService is a lifecycle hook that starts the dispatcher when invoked
// via DI.
//
// Example:
//
//	container.Invoke(remind.StartService)
func StartService(params StartParams) error {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return params.Service.Start(ctx)
}
