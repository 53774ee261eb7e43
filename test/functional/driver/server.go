package driver

import (
	"fmt"
	"net/http/httptest"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/infra/cache"
	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/infra/sql"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/httpapi"
	"recordbook-server/internal/records/persistence"
	"recordbook-server/internal/records/usecases"
)

type ServerOptions struct {
	// Database names the in-memory database. Servers sharing a name share
	// their snapshots.
	Database         string
	ValidationBypass bool
	ImportMaxBytes   int64
}

// Server runs the whole HTTP stack in process on a random port.
type Server struct {
	URL     string
	Service *usecases.SimpleSheetService

	http    *httptest.Server
	broker  *async.LocalBroker
	changes *httpapi.ChangeWebSocketController
}

func StartServer(opts ServerOptions) (*Server, error) {
	orm, err := sql.NewMemoryORM(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	repository, err := persistence.NewRowRepository(orm)
	if err != nil {
		return nil, fmt.Errorf("building repository: %w", err)
	}

	broker := async.NewLocalBroker()
	service, err := usecases.NewSheetService(usecases.SheetServiceConfig{
		ValidationBypass: opts.ValidationBypass,
		ChartMinYear:     2001,
	}, repository, broker)
	if err != nil {
		return nil, fmt.Errorf("building sheet service: %w", err)
	}

	changes, err := httpapi.NewChangeWebSocketController(broker)
	if err != nil {
		return nil, fmt.Errorf("building change stream: %w", err)
	}

	images, err := cache.New(nil)
	if err != nil {
		return nil, fmt.Errorf("building image cache: %w", err)
	}

	server := httpserver.NewServer(
		httpserver.ServerConfig{AllowedOrigins: []string{"*"}},
		httpapi.NewSheetController(service),
		httpapi.NewFormController(service),
		httpapi.NewImportController(httpapi.ImportConfig{MaxBytes: opts.ImportMaxBytes}, service),
		httpapi.NewChartController(service, chart.NewRenderer(640, 320), images),
		changes,
	)

	testServer := httptest.NewServer(server.Handler())
	return &Server{
		URL:     testServer.URL,
		Service: service,
		http:    testServer,
		broker:  broker,
		changes: changes,
	}, nil
}

func (s *Server) Stop() {
	s.http.Close()
	s.changes.Shutdown()
	s.broker.Stop()
}
