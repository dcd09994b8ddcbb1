package xapp

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/xappkit/telemetry"
)

// tracingHook brackets the run span with tracer provider setup and
// shutdown. It starts first and stops last so spans from the other
// activities are flushed before exit.
func tracingHook(cfg telemetry.TracerConfig) hook {
	var provider *sdktrace.TracerProvider
	return hook{
		name: "tracing",
		start: func(ctx context.Context, app *App) error {
			tp, err := telemetry.InitTracer(ctx, cfg)
			if err != nil {
				return err
			}
			provider = tp
			return nil
		},
		stop: func(ctx context.Context, app *App) error {
			if provider == nil {
				return nil
			}
			return provider.Shutdown(ctx)
		},
	}
}
