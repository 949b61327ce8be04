package handlers

import (
	"net/http"

	"github.com/iaparraguez/Pagina-Fotos/gallery"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Required-field checks live in the gallery service so that an empty name is
// rejected before any store call, not by the binding layer.
type AlbumCreateRequest struct {
	Name          string `form:"name"`
	CoverImageURL string `form:"cover_image_url"`
	ThumbnailURL  string `form:"thumbnail_url"`
	Description   string `form:"description"`
}

type AlbumIDRequest struct {
	AlbumID string `form:"album_id" binding:"required"`
}

func (app *App) AlbumCreate(c *gin.Context) {
	r := AlbumCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	album, err := app.Gallery.CreateAlbum(c.Request.Context(), gallery.AlbumDraft{
		Name:          r.Name,
		CoverImageURL: r.CoverImageURL,
		ThumbnailURL:  r.ThumbnailURL,
		Description:   r.Description,
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAlbumInfo(album))
}

func (app *App) AlbumDelete(c *gin.Context) {
	r := AlbumIDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := app.Gallery.DeleteAlbum(c.Request.Context(), r.AlbumID); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func (app *App) AlbumList(c *gin.Context) {
	albums, err := app.Gallery.Albums(c.Request.Context())
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAlbumInfoList(albums))
}
