// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/icpc-scoreboard/metrics"
)

// Dialects understood by the gateway. They double as database/sql driver names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// PoolOptions bounds the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Gateway owns the connection pool. Every statement issued by the API goes
// through Query, QueryOne or Exec.
type Gateway struct {
	db      *sql.DB
	dialect string
	metrics *metrics.Manager
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc maps the current row to a value.
type ScanFunc[T any] func(Scanner) (T, error)

// Open connects to the database, applies pool limits and verifies the
// connection with a ping.
func Open(ctx context.Context, dialect, dsn string, pool PoolOptions, m *metrics.Manager) (*Gateway, error) {
	switch dialect {
	case DialectPostgres:
	case DialectSQLite:
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return New(conn, dialect, m), nil
}

// New wraps an already opened pool.
func New(conn *sql.DB, dialect string, m *metrics.Manager) *Gateway {
	return &Gateway{db: conn, dialect: dialect, metrics: m}
}

// sqliteDSN adds the connection parameters the queries rely on: times stored
// in a format SQLite's date functions understand, enforced foreign keys and a
// busy timeout so concurrent writers wait instead of failing.
func sqliteDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "_time_format") {
		params = append(params, "_time_format=sqlite")
	}
	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Dialect returns the dialect name.
func (g *Gateway) Dialect() string {
	return g.dialect
}

// ILike returns the case-insensitive LIKE operator for the dialect.
// SQLite's LIKE already ignores ASCII case.
func (g *Gateway) ILike() string {
	if g.dialect == DialectPostgres {
		return "ILIKE"
	}
	return "LIKE"
}

// DB exposes the underlying pool for schema management and tests.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// Ping verifies the store is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Close releases the pool.
func (g *Gateway) Close() error {
	return g.db.Close()
}

// Stats reports pool usage.
func (g *Gateway) Stats() sql.DBStats {
	return g.db.Stats()
}

// rebind rewrites $N placeholders to ?N for SQLite so numbered parameters
// keep their positions. Quoted literals are left alone.
func (g *Gateway) rebind(stmt string) string {
	if g.dialect != DialectSQLite || !strings.Contains(stmt, "$") {
		return stmt
	}

	var b strings.Builder
	b.Grow(len(stmt))
	inQuote := false
	for i := 0; i < len(stmt); i++ {
		c := stmt[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == '$' && !inQuote && i+1 < len(stmt) && stmt[i+1] >= '0' && stmt[i+1] <= '9':
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fail records and wraps a statement error.
func (g *Gateway) fail(ctx context.Context, op string, err error) error {
	kind := Classify(err)
	g.metrics.RecordQueryError(kind)
	slog.DebugContext(ctx, "statement failed", "op", op, "kind", kind, "error", err)
	return fmt.Errorf("%s failed: %w", op, err)
}

// Query runs stmt with positional args and returns every row mapped through
// scan, in the order the store produced them. An empty result is an empty,
// non-nil slice.
func Query[T any](ctx context.Context, g *Gateway, scan ScanFunc[T], stmt string, args ...any) ([]T, error) {
	start := time.Now()
	defer func() { g.metrics.RecordQuery("query", time.Since(start)) }()

	rows, err := g.db.QueryContext(ctx, g.rebind(stmt), args...)
	if err != nil {
		return nil, g.fail(ctx, "query", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, g.fail(ctx, "scan", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, g.fail(ctx, "query", err)
	}
	return out, nil
}

// QueryOne returns the first row of stmt. found is false when the statement
// produced no rows; that is not an error.
func QueryOne[T any](ctx context.Context, g *Gateway, scan ScanFunc[T], stmt string, args ...any) (v T, found bool, err error) {
	start := time.Now()
	defer func() { g.metrics.RecordQuery("query", time.Since(start)) }()

	rows, err := g.db.QueryContext(ctx, g.rebind(stmt), args...)
	if err != nil {
		return v, false, g.fail(ctx, "query", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return v, false, g.fail(ctx, "query", err)
		}
		return v, false, nil
	}
	v, err = scan(rows)
	if err != nil {
		return v, false, g.fail(ctx, "scan", err)
	}
	return v, true, nil
}

// Exec runs a statement that returns no rows and reports rows affected.
func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	start := time.Now()
	defer func() { g.metrics.RecordQuery("exec", time.Since(start)) }()

	res, err := g.db.ExecContext(ctx, g.rebind(stmt), args...)
	if err != nil {
		return 0, g.fail(ctx, "exec", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, g.fail(ctx, "rows affected", err)
	}
	return n, nil
}
