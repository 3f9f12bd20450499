package config

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureDBReturnsWithoutBlocking(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	DB = db
	t.Cleanup(func() {
		DB = nil
		db.Close()
	})

	done := make(chan error, 1)
	go func() { done <- EnsureDB() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("EnsureDB did not return, dbMu is held twice")
	}
}

func TestConnectDBReusesExistingHandle(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	DB = db
	t.Cleanup(func() {
		DB = nil
		db.Close()
	})

	if got := ConnectDB(); got != db {
		t.Fatal("ConnectDB should return the existing handle")
	}
}

func TestBuildDSNReportsMatchedRows(t *testing.T) {
	dsn := buildDSN()
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Fatalf("DSN must request matched-rows semantics: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("DSN must parse DATETIME columns: %s", dsn)
	}
}
