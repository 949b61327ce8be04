// Package web is the public, read-only surface of the portfolio: the home
// page data, the album grid and the per-album lightbox feed.
package web

import (
	"errors"
	"net/http"

	"github.com/iaparraguez/Pagina-Fotos/handlers"
	"github.com/iaparraguez/Pagina-Fotos/store"

	"github.com/gin-gonic/gin"
)

// Home returns what the landing page renders: the newest albums first.
func Home(app *handlers.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		albums, err := app.Gallery.Albums(c.Request.Context())
		if err != nil {
			handlers.Abort(c, err)
			return
		}
		featured := handlers.NewAlbumInfoList(albums)
		if len(featured) > 6 {
			featured = featured[:6]
		}
		c.JSON(http.StatusOK, gin.H{
			"error":    "",
			"featured": featured,
			"total":    len(albums),
		})
	}
}

// Albums returns the full public album grid.
func Albums(app *handlers.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		albums, err := app.Gallery.Albums(c.Request.Context())
		if err != nil {
			handlers.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, handlers.NewAlbumInfoList(albums))
	}
}

// AlbumView returns one album with its photos in lightbox order. A dangling
// album id is a plain 404; the client navigates back to the grid.
func AlbumView(app *handlers.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		album, err := app.Gallery.Album(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
			return
		}
		if err != nil {
			handlers.Abort(c, err)
			return
		}
		photos, err := app.Gallery.PhotosByAlbum(c.Request.Context(), id)
		if err != nil {
			handlers.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"error":  "",
			"album":  handlers.NewAlbumInfo(album),
			"photos": handlers.NewPhotoInfoList(photos),
		})
	}
}

// DisallowRobots keeps crawlers away from the JSON surface.
func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
