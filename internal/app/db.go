package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const dbPingTimeout = 5 * time.Second

// OpenDB opens the traced Postgres pool and checks it is reachable.
func OpenDB(ctx context.Context, cfg config.Config, applicationName string, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dsn := withApplicationName(cfg.DBURL, applicationName)
	dbName := dbNameFromURL(dsn)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres connected",
		"db_name", dbName,
		"max_open_conns", cfg.DBMaxOpenConns,
		"application_name", applicationName,
	)
	return db, nil
}
