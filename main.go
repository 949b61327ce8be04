package main

import (
	"context"
	"strings"
	"time"

	"github.com/iaparraguez/Pagina-Fotos/auth"
	"github.com/iaparraguez/Pagina-Fotos/config"
	"github.com/iaparraguez/Pagina-Fotos/db"
	"github.com/iaparraguez/Pagina-Fotos/gallery"
	"github.com/iaparraguez/Pagina-Fotos/handlers"
	"github.com/iaparraguez/Pagina-Fotos/identity"
	"github.com/iaparraguez/Pagina-Fotos/logger"
	"github.com/iaparraguez/Pagina-Fotos/models"
	"github.com/iaparraguez/Pagina-Fotos/store"
	"github.com/iaparraguez/Pagina-Fotos/utils"
	"github.com/iaparraguez/Pagina-Fotos/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionStoreKey       = "this is a long key" // TODO: convert to env variable
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	logger.Init(config.DEBUG_MODE)
	db.Init()
	models.Init()

	albums := store.NewCollection[*models.Album](db.Instance, "albums", config.APP_NAMESPACE)
	photos := store.NewCollection[*models.Photo](db.Instance, "photos", config.APP_NAMESPACE)
	provider := identity.New(db.Instance, config.AUTH_SECRET)
	go provider.Bootstrap(context.Background(), config.AUTH_TOKEN)

	app := &handlers.App{
		Gallery:  gallery.New(provider, albums, photos),
		Identity: provider,
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionStoreKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/feed"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// Public gallery
	router.GET("/", web.Home(app))
	router.GET("/api/albums", web.Albums(app))
	router.GET("/api/album/:id", web.AlbumView(app))
	router.GET("/feed", app.Feed)
	router.GET("/robots.txt", web.DisallowRobots)

	// Admin panel
	router.POST("/admin/login", app.AdminLogin)
	authRouter := &auth.Router{Base: router}
	authRouter.POST("/admin/logout", app.AdminLogout)
	authRouter.GET("/admin/status", app.AdminStatus)
	authRouter.GET("/admin/album/list", app.AlbumList)
	authRouter.POST("/admin/album/create", app.AlbumCreate)
	authRouter.POST("/admin/album/delete", app.AlbumDelete)
	authRouter.GET("/admin/photo/list", app.PhotoList)
	authRouter.POST("/admin/photo/add", app.PhotoAdd)
	authRouter.POST("/admin/photo/delete", app.PhotoDelete)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logger.L.Fatalw("server stopped", "err", err)
}
