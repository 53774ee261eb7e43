package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"recordbook-server/cmd/api/wire"
	"recordbook-server/cmd/config"
	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/infra/node"
	"recordbook-server/internal/infra/sql"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const _restoreTimeout = 30 * time.Second

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	configDir := pflag.String("config-dir", "", "directory holding server.yaml")
	pflag.Parse()
	godotenv.Load()
	config.SetConfigDir(*configDir)
	config := config.LoadConfig()

	nodeInfo := node.GetNodeInfo()
	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{
		slog.String("version", nodeInfo.Version),
		slog.String("node", nodeInfo.ID),
	})
	slog.SetDefault(slog.New(handler))
	slog.Info("recordbook is initializing",
		slog.String("hostname", nodeInfo.Hostname),
		slog.String("ip", nodeInfo.IPAddress),
		slog.String("commit", nodeInfo.CommitHash),
	)
	slog.Debug("config loaded", "data", config)

	shutdownOtel := func() error { return nil }
	if config.Otel.Enabled {
		shutdownOtel = startOTel(config.Otel.Endpoint, nodeInfo)
	}

	internalBroker := async.NewLocalBroker()
	app := handleWireInjector(wire.InitializeApplication(internalBroker)).(*wire.Application)

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), _restoreTimeout)
	if err := app.Service.Restore(restoreCtx); err != nil {
		slog.Error("restoring sheets", slog.Any("error", err))
	}
	cancelRestore()

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{
			Addr:           config.HTTP.Addr,
			AllowedOrigins: config.HTTP.AllowedOrigins,
			HealthChecks:   healthChecks(config),
		},
		app.SheetController,
		app.FormController,
		app.ImportController,
		app.ChartController,
		app.ChangeController,
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	workers := []async.Worker{app.SnapshotWorker}
	for _, worker := range workers {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}
	slog.Info("recordbook is ready", slog.String("addr", config.HTTP.Addr))

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	app.ChangeController.Shutdown()

	cancelFn()
	wg.Wait()
	internalBroker.Stop()

	if err := shutdownOtel(); err != nil {
		slog.Error("stopping otel", slog.Any("error", err))
	}
	slog.Info("good bye!!!")
	os.Exit(0)
}

// healthChecks pings postgres when it backs the snapshots. The in-memory
// driver has nothing to check.
func healthChecks(cfg config.AppConfig) map[string]httpserver.HealthCheck {
	if cfg.Database.Driver != config.DriverPostgres {
		return nil
	}

	url := cfg.Database.URL
	if url == "" {
		url = cfg.Database.DSN
	}

	database := sql.NewPostgreDatabase(url)
	return map[string]httpserver.HealthCheck{
		"database": func(ctx context.Context) error {
			err := database.Ping(ctx)
			if !errors.Is(err, sql.ErrNotConnected) {
				return err
			}
			if err := database.Open(ctx); err != nil {
				return err
			}
			return database.Ping(ctx)
		},
	}
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel(endpoint string, nodeInfo *node.Node) ShutdownFunc {
	slog.Info("starting OTel providers", slog.String("endpoint", endpoint))
	shutdown, err := otelStart(context.Background(), endpoint, newResource(nodeInfo))
	if err != nil {
		panic(err)
	}

	return shutdown
}

func newResource(nodeInfo *node.Node) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("recordbook-server"),
		semconv.ServiceVersionKey.String(nodeInfo.Version),
		semconv.ServiceInstanceIDKey.String(nodeInfo.ID),
		semconv.HostNameKey.String(nodeInfo.Hostname),
	)
}

func otelStart(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx, endpoint, res)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx, endpoint, res)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func startMetricsProvider(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp, res)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMeterProvider(metricExporter metric.Exporter, res *resource.Resource) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
