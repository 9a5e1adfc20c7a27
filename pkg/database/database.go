package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/stagebook/stagebook/pkg/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/schema"
)

type key int

const ctxKey key = 0

func WithLogging(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey, true)
}

type logQueryHook struct {
	log    logger.Logger
	always bool
}

func (*logQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (qh *logQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if !qh.always {
		enabled, ok := ctx.Value(ctxKey).(bool)
		if !ok || !enabled {
			return
		}
	}

	qh.log.Debug(event.Query, logger.Data{"duration_ms": time.Since(event.StartTime).Milliseconds()})
}

// New opens the configured database and verifies that it accepts queries.
// The returned handle is safe for concurrent use; callers own closing it.
func New(cfg *config.Config) (*bun.DB, error) {
	sqldb, dialect, err := open(cfg)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, dialect)

	// print out all queries in debug mode
	if cfg.DatabaseDebug {
		db.AddQueryHook(&logQueryHook{log: logger.NewWithLevel("debug"), always: true})
	}

	// Retry up to a few times to ensure that the database can connect.
	for i := 0; i < cfg.DatabaseConnectRetryCount; i++ {
		_, err = db.Exec("SELECT 1")
		if err != nil {
			time.Sleep(cfg.DatabaseConnectRetryDelay)
			continue
		}
		// We've successfully connected.
		break
	}
	if err != nil {
		_ = db.Close()
		return nil, errors.WithStack(err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite || cfg.DatabaseDriver == "" {
		if err := configureSQLite(db, cfg); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

func open(cfg *config.Config) (*sql.DB, schema.Dialect, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite, "":
		sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseFilePath)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		// SQLite allows a single writer. Funnelling every statement through
		// one connection also keeps an in-memory database shared.
		sqldb.SetMaxOpenConns(1)
		return sqldb, sqlitedialect.New(), nil
	case config.DriverPostgres:
		pgcfg, err := pgx.ParseConfig(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid postgres dsn")
		}
		return stdlib.OpenDB(*pgcfg), pgdialect.New(), nil
	case config.DriverMySQL:
		dsn, err := mysqlDSN(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		sqldb, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		return sqldb, mysqldialect.New(), nil
	default:
		return nil, nil, errors.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// mysqlDSN forces time columns to be scanned as UTC time.Time values.
func mysqlDSN(dsn string) (string, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", errors.Wrap(err, "invalid mysql dsn")
	}
	mcfg.ParseTime = true
	mcfg.Loc = time.UTC
	return mcfg.FormatDSN(), nil
}

func configureSQLite(db *bun.DB, cfg *config.Config) error {
	_, err := db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return errors.Wrap(err, "failed to enable foreign keys")
	}

	if cfg.DatabaseFilePath != ":memory:" {
		// WAL mode allows concurrent reads during writes.
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			return errors.Wrap(err, "failed to enable WAL mode")
		}
	}

	// busy_timeout makes SQLite wait before returning SQLITE_BUSY.
	_, err = db.Exec("PRAGMA busy_timeout=?", cfg.DatabaseBusyTimeout.Milliseconds())
	if err != nil {
		return errors.Wrap(err, "failed to set busy_timeout")
	}

	return nil
}
