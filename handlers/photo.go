package handlers

import (
	"net/http"

	"github.com/iaparraguez/Pagina-Fotos/gallery"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PhotoAddRequest struct {
	AlbumID  string `form:"album_id"`
	ImageURL string `form:"image_url"`
	Title    string `form:"title"`
	Caption  string `form:"caption"`
}

type PhotoIDRequest struct {
	PhotoID string `form:"photo_id" binding:"required"`
}

func (app *App) PhotoAdd(c *gin.Context) {
	r := PhotoAddRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photo, err := app.Gallery.AddPhoto(c.Request.Context(), gallery.PhotoDraft{
		AlbumID:  r.AlbumID,
		ImageURL: r.ImageURL,
		Title:    r.Title,
		Caption:  r.Caption,
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPhotoInfo(photo))
}

func (app *App) PhotoDelete(c *gin.Context) {
	r := PhotoIDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := app.Gallery.DeletePhoto(c.Request.Context(), r.PhotoID); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func (app *App) PhotoList(c *gin.Context) {
	r := AlbumIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photos, err := app.Gallery.PhotosByAlbum(c.Request.Context(), r.AlbumID)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPhotoInfoList(photos))
}
