package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cacheHeaderFor(t *testing.T, cacheTime int) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use((&CacheRouter{CacheTime: cacheTime}).Handler())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	return w.Header().Get("cache-control")
}

func TestCacheRouterNoCacheByDefault(t *testing.T) {
	assert.Equal(t, "no-cache", cacheHeaderFor(t, CacheNoCache))
}

func TestCacheRouterPublicMaxAge(t *testing.T) {
	assert.Equal(t, "public, max-age=3600", cacheHeaderFor(t, 3600))
}
