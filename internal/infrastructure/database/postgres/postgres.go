package postgres

import (
	"fmt"
	"sync"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var lock = &sync.Mutex{}
var db *sqlx.DB

func GetDBInstance(user, password, host, port, dbName string) (*sqlx.DB, error) {
	lock.Lock()
	defer lock.Unlock()

	if db != nil {
		log.Info().Str("component", "GetDBInstance").Msg("instance is already created")
		return db, nil
	}

	instance, err := Connect(fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName), dbName)
	if err != nil {
		return nil, err
	}

	db = instance

	return db, nil
}

// CloseDBInstance closes the shared pool and forgets it, so a later
// GetDBInstance opens a fresh one.
func CloseDBInstance() error {
	lock.Lock()
	defer lock.Unlock()

	if db == nil {
		return nil
	}

	err := db.Close()
	db = nil

	return err
}

// Connect opens a traced connection pool without touching the shared instance.
func Connect(dsn, dbName string) (*sqlx.DB, error) {
	sqlDB, err := otelsql.Open("postgres", dsn,
		otelsql.WithAttributes(
			semconv.DBSystemPostgreSQL,
			semconv.DBNameKey.String(dbName),
		),
		otelsql.WithSpanOptions(otelsql.SpanOptions{
			DisableQuery: true,
		}),
	)
	if err != nil {
		return nil, err
	}

	instance := sqlx.NewDb(sqlDB, "postgres")
	if err := instance.Ping(); err != nil {
		instance.Close()
		return nil, err
	}

	return instance, nil
}
