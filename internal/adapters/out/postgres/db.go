// Package postgres provides the GORM-backed implementations of the engine's
// collaborator ports together with connection and migration helpers.
package postgres

import (
	"database/sql"
	"fmt"

	"garments/internal/adapters/out/postgres/cartrepo"
	"garments/internal/adapters/out/postgres/measurementrepo"
	"garments/internal/adapters/out/postgres/orderrepo"

	// database/sql driver used for the bootstrap connection.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionString builds a PostgreSQL DSN from its parts.
func ConnectionString(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// CreateDBIfNotExists connects to the maintenance database and creates the
// application database when it is missing. Uses a plain database/sql
// connection since GORM requires the target database to exist.
func CreateDBIfNotExists(host, port, user, password, dbName, sslMode string) error {
	dsn := ConnectionString(host, port, user, password, "postgres", sslMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", dbName)); err != nil {
			return fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	return nil
}

// OpenGormDB opens a GORM connection to the application database.
func OpenGormDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Migrate applies the schema for every collaborator table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cartrepo.CartItemDTO{},
		&measurementrepo.MeasurementDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
