package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router wraps the base engine with the admin-gate check. The gate is a
// session flag set after a plaintext password compare; it keeps casual
// visitors out of the admin panel and nothing more.
type Router struct {
	Base *gin.Engine
}

func (ar *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	session := LoadSession(c)
	if !session.IsAdmin() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c)
}

func (ar *Router) POST(path string, handler gin.HandlerFunc) {
	ar.Base.POST(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}

func (ar *Router) GET(path string, handler gin.HandlerFunc) {
	ar.Base.GET(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}
