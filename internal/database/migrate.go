package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"
)

const MigrationsTable = "schema_migrations"

// Migrate applies the *.sql files of fsys in name order, each in its own
// transaction. Applied names are recorded in MigrationsTable so a file runs
// once.
func Migrate(ctx context.Context, db PGX, fsys fs.FS, logger *zap.SugaredLogger) error {
	if _, err := db.ExecRaw(ctx, `CREATE TABLE IF NOT EXISTS `+MigrationsTable+` (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("create %s: %w", MigrationsTable, err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	var applied []string
	if err := db.Select(ctx, &applied, PSQL.Select("name").From(MigrationsTable)); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	done := make(map[string]struct{}, len(applied))
	for _, name := range applied {
		done[name] = struct{}{}
	}

	for _, name := range names {
		if _, ok := done[name]; ok {
			continue
		}

		if err := applyMigration(ctx, db, fsys, name); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		logger.Infow("applied migration", "name", name)
	}

	return nil
}

func applyMigration(ctx context.Context, db PGX, fsys fs.FS, name string) error {
	sql, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.ExecRaw(ctx, string(sql)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}

	if _, err := tx.Exec(ctx, PSQL.Insert(MigrationsTable).Columns("name").Values(name)); err != nil {
		return fmt.Errorf("record: %w", err)
	}

	return tx.Commit(ctx)
}
