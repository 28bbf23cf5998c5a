package tracing

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
)

// Module installs a tracer provider (OTLP or no-op) and shuts it down with
// the app.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
)

type tracerProviderResult struct {
	fx.Out

	// SDKProvider is nil when tracing is disabled.
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// NewTracerProvider creates and globally registers a TracerProvider.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (tracerProviderResult, error) {
	log = log.With(logger.Scope("tracing"))
	tc := cfg.Tracing

	if !tc.Enabled() {
		log.Info("OTel tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return tracerProviderResult{}, nil
	}

	log.Info("OTel tracing enabled",
		slog.String("endpoint", tc.OTLPEndpoint),
		slog.String("service", tc.ServiceName),
		slog.Float64("sampling_rate", tc.SampleRatio),
	)

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpointURL(tc))}
	if tc.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return tracerProviderResult{}, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(tc.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
	)
	if err != nil {
		log.Warn("OTel resource detection failed", logger.Error(err))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(tc.SampleRatio)),
	)
	otel.SetTracerProvider(tp)

	return tracerProviderResult{SDKProvider: tp}, nil
}

// Sampler samples every trace at ratios of 1 and above, and the given
// fraction of root traces otherwise. Child spans follow their parent.
func Sampler(ratio float64) sdktrace.Sampler {
	if ratio >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// endpointURL accepts a bare host:port as well as a full URL.
func endpointURL(tc config.TracingConfig) string {
	if strings.HasPrefix(tc.OTLPEndpoint, "http://") || strings.HasPrefix(tc.OTLPEndpoint, "https://") {
		return tc.OTLPEndpoint
	}
	if tc.Insecure {
		return "http://" + tc.OTLPEndpoint
	}
	return "https://" + tc.OTLPEndpoint
}

type sdkProviderParam struct {
	fx.In
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// RegisterTracingLifecycle flushes and shuts the SDK provider down on app stop.
func RegisterTracingLifecycle(lc fx.Lifecycle, p sdkProviderParam, log *slog.Logger) {
	if p.SDKProvider == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down OTel TracerProvider", logger.Scope("tracing"))
			return p.SDKProvider.Shutdown(ctx)
		},
	})
}

// Middleware starts a server span per request. Health checks and static
// assets are skipped; with tracing disabled it passes requests through.
func Middleware(cfg *config.Config) func(http.Handler) http.Handler {
	if !cfg.Tracing.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	return otelhttp.NewMiddleware(cfg.Tracing.ServiceName, otelhttp.WithFilter(traced))
}

func traced(r *http.Request) bool {
	p := r.URL.Path
	return p != "/health" && p != "/metrics" && !strings.HasPrefix(p, "/static/")
}
