package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// buildDSN assembles the MySQL connection string. clientFoundRows makes
// RowsAffected report matched rows, not changed rows, so a no-op UPDATE on an
// existing row is not mistaken for a missing one.
func buildDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&clientFoundRows=true&timeout=5s&readTimeout=30s&writeTimeout=30s",
		envOr("DB_USER", "root"),
		envOr("DB_PASSWORD", ""),
		envOr("DB_HOST", "127.0.0.1:3306"),
		envOr("DB_NAME", "bds_ride"),
	)
}

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB() *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()
	return connectLocked()
}

// connectLocked does the actual connect. Callers must hold dbMu.
func connectLocked() *sql.DB {
	if DB != nil {
		return DB
	}

	db, err := sql.Open("mysql", buildDSN())
	if err != nil {
		log.Fatalf("failed to open DB: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	DB = db
	log.Println("connected to MySQL database")
	return DB
}

// EnsureDB verifies the shared connection is up, connecting first if needed.
func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	db := DB
	if db == nil {
		db = connectLocked()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
