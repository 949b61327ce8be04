package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/iaparraguez/Pagina-Fotos/auth"
	"github.com/iaparraguez/Pagina-Fotos/config"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AdminLoginRequest struct {
	Password string `form:"password" binding:"required"`
}

func (app *App) AdminLogin(c *gin.Context) {
	r := AdminLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.Password), []byte(config.ADMIN_PASSWORD)) != 1 {
		c.JSON(http.StatusUnauthorized, Response{"wrong password"})
		return
	}
	auth.LoadSession(c).LoginAdmin()
	c.JSON(http.StatusOK, OKResponse)
}

func (app *App) AdminLogout(c *gin.Context) {
	auth.LoadSession(c).Logout()
	c.JSON(http.StatusOK, OKResponse)
}

func (app *App) AdminStatus(c *gin.Context) {
	user := app.Identity.Current()
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"admin":    auth.LoadSession(c).IsAdmin(),
		"identity": user.ID,
		"provider": user.Provider,
		"viewers":  ConnectedViewers.Count(),
	})
}
