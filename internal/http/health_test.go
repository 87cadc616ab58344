package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
)

func TestHealthController_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy with a live database", func(t *testing.T) {
		dbPath := "./test_health_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)
		defer func() {
			db.Close()
			os.Remove(dbPath)
		}()

		router := gin.New()
		router.GET("/health", NewHealthController(db, "test").Status)

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/health", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "test", health.Version)
		assert.Equal(t, "ok", health.Checks["database"])
	})

	t.Run("reports a missing database", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthController(nil, "test").Status)

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/health", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "not configured", health.Checks["database"])
	})
}
