package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomerBass/DogNames/internal/config"

	"github.com/gin-gonic/gin"
)

func TestStaticCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.Use(StaticCacheMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := w.Header().Get("Cache-Control"); got != "public, max-age=86400" {
		t.Fatalf("Cache-Control = %q", got)
	}
}
