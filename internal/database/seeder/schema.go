package seeder

import (
	"context"
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/database"
)

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return database.ErrNilDB
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

// inTx runs fn inside a transaction committed only when fn succeeds.
func inTx(ctx context.Context, db database.DB, fn func(tx database.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
