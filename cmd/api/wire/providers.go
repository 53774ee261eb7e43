package wire

import (
	"fmt"

	"recordbook-server/cmd/config"
	"recordbook-server/internal/infra/cache"
	"recordbook-server/internal/infra/sql"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/httpapi"
	"recordbook-server/internal/records/persistence"
	"recordbook-server/internal/records/usecases"

	"github.com/google/wire"
)

const _memoryDatabaseName = "recordbook"

// Application holds the long lived components shared by the server, the
// workers and the shutdown sequence.
type Application struct {
	Service          *usecases.SimpleSheetService
	SheetController  *httpapi.SheetController
	FormController   *httpapi.FormController
	ImportController *httpapi.ImportController
	ChartController  *httpapi.ChartController
	ChangeController *httpapi.ChangeWebSocketController
	SnapshotWorker   *usecases.SnapshotWorker
}

var SheetServiceSet = wire.NewSet(
	provideSheetServiceConfig,
	provideDatabase,
	persistence.NewRowRepository,
	wire.Bind(new(usecases.RowRepository), new(*persistence.SimpleRowRepository)),
	usecases.NewSheetService,
	wire.Bind(new(usecases.SheetService), new(*usecases.SimpleSheetService)),
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	switch cfg.Database.Driver {
	case "", config.DriverMemory:
		return sql.NewMemoryORM(_memoryDatabaseName)
	case config.DriverPostgres:
		return sql.NewPostgreORM(cfg.Database.DSN, cfg.Database.Timeout)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func provideSheetServiceConfig(cfg config.AppConfig) usecases.SheetServiceConfig {
	return usecases.SheetServiceConfig{
		ValidationBypass: cfg.Validation.Bypass,
		ChartMinYear:     cfg.Chart.MinYear,
	}
}

func provideImportConfig(cfg config.AppConfig) httpapi.ImportConfig {
	return httpapi.ImportConfig{MaxBytes: cfg.Import.MaxBytes}
}

func provideRenderer(cfg config.AppConfig) chart.Renderer {
	return chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)
}

func provideImageCache() (cache.Cache, error) {
	return cache.New(cache.DefaultConfig())
}

func provideSnapshotWorker(cfg config.AppConfig, service usecases.SheetService) (*usecases.SnapshotWorker, error) {
	return usecases.NewSnapshotWorker(cfg.Persistence.SnapshotSchedule, service)
}
