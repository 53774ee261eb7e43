package sql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_retryDelay   = 2 * time.Second
	maxRetries    = 5

	_passwordEnv = "RECORDBOOK_SERVER_POSTGRES_PASSWORD"
)

func withPassword(dsn string) string {
	pass, ok := os.LookupEnv(_passwordEnv)
	if ok {
		return fmt.Sprintf("%s password=%s", dsn, pass)
	}
	return dsn
}

func NewPostgreORM(dsn string, timeout time.Duration) (ORM, error) {
	gormDB, err := gorm.Open(postgres.Open(withPassword(dsn)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		system:               "postgresql",
		autoMigrationEnabled: true,
		timeout:              timeout,
	}, nil
}

var _ Database = (*PostgreDatabase)(nil)

// PostgreDatabase keeps a raw pgx pool next to the ORM, used for readiness
// probes and ad-hoc commands.
type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
	mu   sync.Mutex
}

func NewPostgreDatabase(url string) *PostgreDatabase {
	return &PostgreDatabase{url: withPassword(url)}
}

func (d *PostgreDatabase) Open(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var lastErr error
	for attempt := range maxRetries {
		conn, err := pgxpool.New(ctx, d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}

		lastErr = err
		slog.Warn("connecting to postgres",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(_retryDelay):
		}
	}

	return fmt.Errorf("impossible to connect to database after %d retries: %w", maxRetries, lastErr)
}

func (d *PostgreDatabase) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Conn != nil {
		d.Conn.Close()
		d.Conn = nil
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	d.mu.Lock()
	conn := d.Conn
	d.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	pingCtx, cancel := context.WithTimeout(ctx, _queryTimeout)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

func (d *PostgreDatabase) Command(ctx context.Context, sql string) error {
	d.mu.Lock()
	conn := d.Conn
	d.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	cmdCtx, cancel := context.WithTimeout(ctx, _queryTimeout)
	defer cancel()

	if _, err := conn.Exec(cmdCtx, sql); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}
