package repositories

import (
	"testing"
	"time"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func fareRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "from_location", "to_location", "vehicle_type", "price", "created_at", "updated_at"})
}

func TestFareCreateRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO fares").
		WithArgs(sqlmock.AnyArg(), "Nagercoil", "Kanyakumari", "Sedan", "₹800").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, from_location, to_location, vehicle_type, price").
		WillReturnRows(fareRows().AddRow("f3a1c9e2-0001-4d4b-9c7a-8f0e12ab34cd", "Nagercoil", "Kanyakumari", "Sedan", "₹800", now, now))

	repo := FareRepository{DB: db}
	created, err := repo.Create(models.Fare{From: "Nagercoil", To: "Kanyakumari", VehicleType: "Sedan", Price: "₹800"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
	if created.From != "Nagercoil" || created.To != "Kanyakumari" || created.VehicleType != "Sedan" || created.Price != "₹800" {
		t.Fatalf("round-trip mismatch: %+v", created)
	}
	if created.CreatedAt == "" {
		t.Fatalf("expected server timestamp to round-trip")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFareDeleteSecondTimeReportsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM fares").WithArgs("fare-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM fares").WithArgs("fare-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := FareRepository{DB: db}
	if err := repo.Delete("fare-1"); err != nil {
		t.Fatalf("first delete should succeed, got %v", err)
	}
	err = repo.Delete("fare-1")
	if err == nil {
		t.Fatalf("second delete should fail")
	}
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFareUpdateMissingRowReportsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE fares").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := FareRepository{DB: db}
	_, err = repo.Update("missing", models.Fare{From: "A", To: "B", VehicleType: "SUV", Price: "₹1,000"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
