package store

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
)

// migrations[v] upgrades schema version v to v+1.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS runs (
            id TEXT PRIMARY KEY,
            ring TEXT NOT NULL,
            scan_end REAL NOT NULL,
            step REAL NOT NULL,
            degrees INTEGER NOT NULL,
            points INTEGER NOT NULL,
            dim INTEGER NOT NULL,
            created_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS records (
            run_id TEXT NOT NULL,
            ord INTEGER NOT NULL,
            degree INTEGER NOT NULL,
            start REAL NOT NULL,
            stop REAL NOT NULL,
            rank INTEGER NOT NULL,
            torsion TEXT NOT NULL,
            PRIMARY KEY(run_id, ord, degree),
            FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
        );`,
	},
	{
		`ALTER TABLE runs ADD COLUMN source TEXT NOT NULL DEFAULT '';`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`,
	},
}

func latestVersion() int { return len(migrations) }

func ensureVersionTable(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER NOT NULL);`); err != nil {
		return err
	}
	var cnt int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&cnt); err != nil {
		return err
	}
	if cnt == 0 {
		_, err := db.ExecContext(ctx, `INSERT INTO schema_migrations(version) VALUES(0)`)
		return err
	}

	return nil
}

func schemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	if err := ensureVersionTable(ctx, db); err != nil {
		return 0, err
	}
	var v int
	if err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations`).Scan(&v); err != nil {
		return 0, err
	}

	return v, nil
}

// upToLatest applies every pending migration, one transaction per version.
func upToLatest(ctx context.Context, db *sql.DB) error {
	v, err := schemaVersion(ctx, db)
	if err != nil {
		return errors.Wrap(err, "store: read schema version")
	}
	for ; v < latestVersion(); v++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		for _, stmt := range migrations[v] {
			if _, err = tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return errors.Wrapf(err, "store: migration %d", v+1)
			}
		}
		if _, err = tx.ExecContext(ctx, `UPDATE schema_migrations SET version = ?`, v+1); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err = tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}
