package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "github.com/Thakshinss/bds-nagercoil-ride/internal/config"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newBannerTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = nil
		db.Close()
	})

	r := gin.New()
	r.GET("/api/banner", GetActiveBanner)
	return r, mock
}

func TestGetActiveBannerFallsBackOnStoreFailure(t *testing.T) {
	r, mock := newBannerTestRouter(t)
	mock.ExpectQuery("FROM banner_content").WillReturnError(sqlmock.ErrCancelled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/banner", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("public banner should stay 200, got %d", w.Code)
	}
	var got []models.BannerContent
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body not a banner list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the single fallback entry, got %v", got)
	}
	if got[0].Text != DefaultBannerText || !got[0].IsActive {
		t.Fatalf("unexpected fallback entry: %+v", got[0])
	}
}

func TestGetActiveBannerReturnsStoredRows(t *testing.T) {
	r, mock := newBannerTestRouter(t)
	mock.ExpectQuery("FROM banner_content").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "is_active", "display_order",
			"created_at", "updated_at"}).
			AddRow("b1", "Airport drops from Rs.1500", true, 0, nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/banner", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []models.BannerContent
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body not a banner list: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Airport drops from Rs.1500" {
		t.Fatalf("stored rows not returned: %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
