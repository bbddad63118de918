// Package migrations embeds the goose SQL migrations of the service.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return errors.New("creating goose provider error: " + err.Error())
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	for _, r := range results {
		slog.Info("migration applied", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
	}
	return nil
}
