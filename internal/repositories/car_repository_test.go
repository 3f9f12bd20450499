package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func carRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "type", "price", "features",
		"rating", "description", "image", "is_active", "created_at", "updated_at"})
}

func TestCarListAllReturnsInactiveRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM cars").
		WillReturnRows(carRows().
			AddRow("c1", "Swift Dzire", "Sedan", "Sedan", "₹12/km", []byte(`["AC","Music System"]`), 4.5, "Comfortable sedan", "", true, now, now).
			AddRow("c2", "Innova Crysta", "SUV", "SUV", "₹18/km", []byte(`["AC","7 Seater"]`), 4.8, "Spacious SUV", "", false, now, now))

	repo := CarRepository{DB: db}
	list, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[1].IsActive {
		t.Fatalf("expected inactive row in admin list")
	}
	if len(list[0].Features) != 2 || list[0].Features[0] != "AC" {
		t.Fatalf("features column not decoded: %+v", list[0].Features)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCarListActiveFiltersInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`WHERE is_active = \? ORDER BY category ASC, name ASC`).
		WithArgs(true).
		WillReturnRows(carRows().
			AddRow("c1", "Swift Dzire", "Sedan", "Sedan", "₹12/km", []byte(`[]`), 4.5, "Comfortable sedan", "", true, now, now))

	repo := CarRepository{DB: db}
	list, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list active error: %v", err)
	}
	for _, c := range list {
		if !c.IsActive {
			t.Fatalf("inactive car leaked into public list: %+v", c)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
