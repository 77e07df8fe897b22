package middleware

import (
	"github.com/TomerBass/DogNames/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware adds a Cache-Control header for locally served
// images, using the configured policy.
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := config.Get().Upload.CacheControl; cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
