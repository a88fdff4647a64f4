package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tokyonails/salao-api/internal/models"
)

func setupServicos(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Servico{}))

	h := NewCrud[models.Servico](db)

	r := gin.New()
	r.GET("/servicos", h.List)
	r.POST("/servicos", h.Create)
	r.GET("/servicos/:id", h.Get)
	r.PUT("/servicos/:id", h.Update)
	r.DELETE("/servicos/:id", h.Delete)
	return r
}

func doRaw(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateMalformedBody(t *testing.T) {
	r := setupServicos(t)

	w := doRaw(r, http.MethodPost, "/servicos", "isso não é json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNullBody(t *testing.T) {
	r := setupServicos(t)

	w := doRaw(r, http.MethodPost, "/servicos", "null")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWrongFieldType(t *testing.T) {
	r := setupServicos(t)

	w := doRaw(r, http.MethodPost, "/servicos", `{"nome":"Manicure","preco":"caro"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "preco")
}

func TestUpdateMalformedBodyAfterFetch(t *testing.T) {
	r := setupServicos(t)

	w := doRaw(r, http.MethodPost, "/servicos", `{"nome":"Manicure","preco":3500,"duracaoMinutos":40}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRaw(r, http.MethodPut, "/servicos/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchNonNumericID(t *testing.T) {
	r := setupServicos(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doRaw(r, method, "/servicos/abc", `{"nome":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}
