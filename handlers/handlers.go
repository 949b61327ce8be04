package handlers

import (
	"errors"
	"net/http"

	"github.com/iaparraguez/Pagina-Fotos/gallery"
	"github.com/iaparraguez/Pagina-Fotos/identity"
	"github.com/iaparraguez/Pagina-Fotos/models"
	"github.com/iaparraguez/Pagina-Fotos/store"

	"github.com/gin-gonic/gin"
)

// App holds everything the handlers need. Constructed once in main and passed
// around by reference instead of living in package globals.
type App struct {
	Gallery  *gallery.Service
	Identity *identity.Provider
}

type Response struct {
	Error string `json:"error"`
}

var (
	OKResponse       = Response{}
	NotFoundResponse = Response{"not found"}
)

type AlbumInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cover       string `json:"cover"`
	Thumb       string `json:"thumb"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
}

type PhotoInfo struct {
	ID         string `json:"id"`
	AlbumID    string `json:"album_id"`
	ImageURL   string `json:"image_url"`
	Title      string `json:"title"`
	Caption    string `json:"caption"`
	UploadedAt int64  `json:"uploaded_at"`
}

func NewAlbumInfo(a *models.Album) AlbumInfo {
	return AlbumInfo{
		ID:          a.ID,
		Name:        a.Name,
		Cover:       a.Cover(),
		Thumb:       a.Thumb(),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func NewAlbumInfoList(albums []*models.Album) []AlbumInfo {
	result := []AlbumInfo{}
	for _, a := range albums {
		result = append(result, NewAlbumInfo(a))
	}
	return result
}

func NewPhotoInfo(p *models.Photo) PhotoInfo {
	return PhotoInfo{
		ID:         p.ID,
		AlbumID:    p.AlbumID,
		ImageURL:   p.ImageURL,
		Title:      p.Title,
		Caption:    p.Caption,
		UploadedAt: p.CreatedAt,
	}
}

func NewPhotoInfoList(photos []*models.Photo) []PhotoInfo {
	result := []PhotoInfo{}
	for _, p := range photos {
		result = append(result, NewPhotoInfo(p))
	}
	return result
}

// Abort converts service errors to HTTP responses: validation to 400,
// missing documents to 404, everything else to a 500 with a generic notice.
func Abort(c *gin.Context, err error) {
	var validation *gallery.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, Response{validation.Error()})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusInternalServerError, Response{err.Error()})
}
