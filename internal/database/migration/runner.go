package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/waruna834/skills-project-manager/internal/logger"
	"github.com/waruna834/skills-project-manager/migrations"

	"go.uber.org/zap"
)

const advisoryLockKey int64 = 582910443

var ErrChecksumMismatch = errors.New("migration checksum mismatch")

// Runner applies V<n>__name.sql files in version order, once each. Applied
// files must not change afterwards.
type Runner struct {
	FS     fs.FS
	Logger *zap.Logger
}

// NewRunner reads migrations from dir, or from the embedded set when dir is
// empty.
func NewRunner(dir string, l *zap.Logger) Runner {
	var fsys fs.FS = migrations.FS
	if strings.TrimSpace(dir) != "" {
		fsys = os.DirFS(dir)
	}
	return Runner{FS: fsys, Logger: l}
}

// Run returns the migrations applied by this call.
func (r Runner) Run(ctx context.Context, db *sql.DB) ([]Migration, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	log := logger.OrNop(r.Logger)

	migs, err := Load(r.FS)
	if err != nil {
		return nil, err
	}
	if len(migs) == 0 {
		return nil, nil
	}

	// Session-level advisory locks belong to one connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := ensureSchemaMigrations(ctx, conn); err != nil {
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
	}()

	applied, err := getApplied(ctx, conn)
	if err != nil {
		return nil, err
	}

	done := make([]Migration, 0, len(migs))
	for _, m := range migs {
		if sum, ok := applied[m.Version]; ok {
			if sum != m.Checksum {
				return done, fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
			}
			continue
		}

		if err := applyOne(ctx, conn, m); err != nil {
			return done, err
		}
		log.Info("migration applied", zap.Int64("version", m.Version), zap.String("file", m.Filename))
		done = append(done, m)
	}

	return done, nil
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Load reads and orders the migrations at the root of fsys. Other files are
// ignored.
func Load(fsys fs.FS) ([]Migration, error) {
	if fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	migs := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		m := fileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version: %s", name)
		}

		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		sqlText := strings.TrimSpace(string(b))
		if sqlText == "" {
			return nil, fmt.Errorf("empty migration file: %s", name)
		}

		h := sha256.Sum256([]byte(sqlText))
		migs = append(migs, Migration{
			Version:  v,
			Name:     m[2],
			Filename: name,
			SQL:      sqlText,
			Checksum: hex.EncodeToString(h[:]),
		})
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}

	return migs, nil
}

func ensureSchemaMigrations(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func getApplied(ctx context.Context, conn *sql.Conn) (map[int64]string, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var v int64
		var c string
		if err := rows.Scan(&v, &c); err != nil {
			return nil, err
		}
		out[v] = c
	}
	return out, rows.Err()
}

func applyOne(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
		m.Version,
		m.Name,
		m.Checksum,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
