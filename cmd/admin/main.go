package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/velora/jewelcms"
	"github.com/velora/jewelcms/internal/di"
)

func main() {
	ctx := context.Background()

	dsn := envOr("JEWELCMS_DSN", "file:jewelcms.db?cache=shared&_fk=1")
	addr := envOr("JEWELCMS_ADDR", ":8080")

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := runMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	cfg := jewelcms.DefaultConfig()
	cfg.Storage.DSN = dsn
	if base := os.Getenv("JEWELCMS_UPLOADS_BASE_URL"); base != "" {
		cfg.Uploads.BaseURL = base
	}
	if root := os.Getenv("JEWELCMS_UPLOADS_ROOT"); root != "" {
		cfg.Uploads.LocalRoot = root
	}
	if public := os.Getenv("JEWELCMS_UPLOADS_PUBLIC_URL"); public != "" {
		cfg.Uploads.PublicURL = public
	}

	module, err := jewelcms.New(cfg, di.WithBunDB(db))
	if err != nil {
		log.Fatalf("initialise jewelcms: %v", err)
	}

	mux := http.NewServeMux()
	module.RegisterAdminRoutes(mux)

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("admin api listening on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("serve: %v", err)
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	migrations := jewelcms.GetMigrationsFS()
	entries, err := fs.Glob(migrations, "data/sql/migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, entry := range entries {
		payload, err := fs.ReadFile(migrations, entry)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry, err)
		}
		if _, err := db.ExecContext(ctx, string(payload)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry, err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
