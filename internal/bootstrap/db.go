package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/knmedan/showcase-backend/config"
	adminrepo "github.com/knmedan/showcase-backend/internal/admin/repository"
	"github.com/knmedan/showcase-backend/internal/storage/sqlite"
)

// OpenDB opens the SQLite store, creates the schema and seeds the single
// admin account from configuration. The connection is owned by the caller
// and closed on shutdown.
func OpenDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sqlite.NewConnection(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	if err := sqlite.Init(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	admins := adminrepo.NewAdminRepository(db)
	if err := admins.Seed(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return db, nil
}
