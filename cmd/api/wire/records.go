//go:build wireinject
// +build wireinject

package wire

import (
	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/records/httpapi"

	"github.com/google/wire"
)

func InitializeApplication(broker async.InternalBroker) (*Application, error) {
	wire.Build(
		provideAppConfig,
		SheetServiceSet,
		provideImportConfig,
		provideRenderer,
		provideImageCache,
		provideSnapshotWorker,
		httpapi.NewSheetController,
		httpapi.NewFormController,
		httpapi.NewImportController,
		httpapi.NewChartController,
		httpapi.NewChangeWebSocketController,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
