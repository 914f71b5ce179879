package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvlath-persistence/barcode"
	"github.com/katalvlaran/lvlath-persistence/metrics"
	"github.com/katalvlaran/lvlath-persistence/rips"
)

// Run is a stored scan. Document.RunID is the primary key.
type Run struct {
	barcode.Document
	Source    string
	CreatedAt time.Time
}

// Store wraps a single-connection SQLite handle.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates parent directories, opens path and migrates the schema.
// ":memory:" is accepted.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "store: create directory")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open")
	}
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "store: enable foreign keys")
	}
	if err = upToLatest(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// withTx commits on nil error and rolls back otherwise.
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveRun stores run and returns its ID (a new UUID when run.RunID is empty).
func (s *Store) SaveRun(ctx context.Context, run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs WHERE id = ?`, run.RunID).Scan(&exists); err != nil {
			return err
		}
		if exists > 0 {
			return errors.Wrapf(ErrDuplicateRun, "%s", run.RunID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs(id, source, ring, scan_end, step, degrees, points, dim, created_at) VALUES(?,?,?,?,?,?,?,?,?)`,
			run.RunID, run.Source, run.Ring, run.End, run.Step, run.Degrees, run.Points, run.Dim,
			run.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO records(run_id, ord, degree, start, stop, rank, torsion) VALUES(?,?,?,?,?,?,?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, rec := range run.Records {
			for k, rank := range rec.Ranks {
				var tor []int64
				if k < len(rec.Torsions) {
					tor = rec.Torsions[k]
				}
				if tor == nil {
					tor = []int64{}
				}
				b, err := json.Marshal(tor)
				if err != nil {
					return err
				}
				if _, err = stmt.ExecContext(ctx, run.RunID, i, k, rec.Start, rec.End, rank, string(b)); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "store: save run")
	}
	metrics.StoredRunsTotal.Inc()

	return run.RunID, nil
}

// LoadRun reads a run with all its records.
func (s *Store) LoadRun(ctx context.Context, id string) (Run, error) {
	run := Run{Document: barcode.Document{RunID: id}}
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT source, ring, scan_end, step, degrees, points, dim, created_at FROM runs WHERE id = ?`, id).
		Scan(&run.Source, &run.Ring, &run.End, &run.Step, &run.Degrees, &run.Points, &run.Dim, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, errors.Wrapf(ErrNotFound, "%s", id)
	}
	if err != nil {
		return Run{}, errors.Wrap(err, "store: load run")
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, errors.Wrap(err, "store: parse created_at")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ord, degree, start, stop, rank, torsion FROM records WHERE run_id = ? ORDER BY ord, degree`, id)
	if err != nil {
		return Run{}, errors.Wrap(err, "store: load records")
	}
	defer rows.Close()

	var (
		ord, degree, rank int
		start, stop       float64
		torsion           string
	)
	for rows.Next() {
		if err = rows.Scan(&ord, &degree, &start, &stop, &rank, &torsion); err != nil {
			return Run{}, err
		}
		if ord == len(run.Records) {
			run.Records = append(run.Records, rips.Record{Start: start, End: stop})
		}
		rec := &run.Records[len(run.Records)-1]
		tor := []int64{}
		if err = json.Unmarshal([]byte(torsion), &tor); err != nil {
			return Run{}, errors.Wrapf(err, "store: record %d degree %d", ord, degree)
		}
		rec.Ranks = append(rec.Ranks, rank)
		rec.Torsions = append(rec.Torsions, tor)
	}
	if err = rows.Err(); err != nil {
		return Run{}, err
	}

	return run, nil
}

// ListRuns returns runs without records, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, ring, scan_end, step, degrees, points, dim, created_at FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, errors.Wrap(err, "store: list runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			created string
		)
		if err = rows.Scan(&r.RunID, &r.Source, &r.Ring, &r.End, &r.Step, &r.Degrees, &r.Points, &r.Dim, &created); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// DeleteRun removes a run and its records.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE run_id = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.Wrapf(ErrNotFound, "%s", id)
		}

		return nil
	})
}
