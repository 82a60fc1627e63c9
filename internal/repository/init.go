package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acervo-dev/acervo/gen/ent"
	"github.com/acervo-dev/acervo/internal/common"
)

// InitResult bundles an opened database with its cleanup function.
type InitResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either the configured Postgres or, for local batch runs,
// an in-memory SQLite database with the schema created.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*InitResult, error) {
	if inmem {
		client, err := OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, err
		}
		return &InitResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &InitResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}
