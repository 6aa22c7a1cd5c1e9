package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter() *gin.Engine {
	h := NewExportHandler()
	r := gin.New()
	r.GET("/menu/export/csv", h.ExportCSV)
	r.GET("/menu/export/excel", h.ExportExcel)
	return r
}

func TestExportHandler_CSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `menus` ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows(menuColumns()).
			AddRow(1, "Nasi Goreng", "Main Course", 25000.0, 450.0, `["rice","egg"]`, "Fried rice", now, now))

	router := newExportRouter()
	req := httptest.NewRequest("GET", "/menu/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "CSV should start with a BOM")
	assert.Contains(t, body, "ID,Name,Category")
	assert.Contains(t, body, "Nasi Goreng")
	assert.Contains(t, body, "rice, egg")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_Excel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `menus` ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows(menuColumns()).
			AddRow(1, "Nasi Goreng", "Main Course", 25000.0, 450.0, `[]`, "Fried rice", now, now).
			AddRow(2, "Es Teh", "Drink", 5000.0, 90.0, `[]`, "Iced tea", now, now))

	router := newExportRouter()
	req := httptest.NewRequest("GET", "/menu/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
	require.NoError(t, mock.ExpectationsWereMet())
}
