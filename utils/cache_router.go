package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheNoCache disables browser caching for a route group.
const CacheNoCache = 0

// CacheRouter sets the cache-control header for every request it sees.
// Gallery pages are public and read-only, so anything with a positive
// CacheTime is marked as publicly cacheable for that many seconds.
type CacheRouter struct {
	CacheTime int // seconds; CacheNoCache (the zero value) disables caching
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime <= CacheNoCache {
			c.Header("cache-control", "no-cache")
		} else {
			c.Header("cache-control", "public, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
