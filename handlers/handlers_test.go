package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/iaparraguez/Pagina-Fotos/auth"
	"github.com/iaparraguez/Pagina-Fotos/config"
	"github.com/iaparraguez/Pagina-Fotos/gallery"
	"github.com/iaparraguez/Pagina-Fotos/identity"
	"github.com/iaparraguez/Pagina-Fotos/models"
	"github.com/iaparraguez/Pagina-Fotos/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func newTestRouter(t *testing.T) (*gin.Engine, *App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Album{}, &models.Photo{}, &models.Identity{}))

	albums := store.NewCollection[*models.Album](db, "albums", "test-ns")
	photos := store.NewCollection[*models.Photo](db, "photos", "test-ns")
	provider := identity.New(db, config.AUTH_SECRET)
	provider.Bootstrap(context.Background(), "")

	app := &App{
		Gallery:  gallery.New(provider, albums, photos),
		Identity: provider,
	}

	router := gin.New()
	router.Use(sessions.Sessions("token", cookie.NewStore([]byte("test-session-key"))))
	router.GET("/feed", app.Feed)
	router.POST("/admin/login", app.AdminLogin)
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/admin/status", app.AdminStatus)
	authRouter.POST("/admin/album/create", app.AlbumCreate)
	authRouter.POST("/admin/album/delete", app.AlbumDelete)
	authRouter.POST("/admin/photo/add", app.PhotoAdd)
	authRouter.GET("/admin/photo/list", app.PhotoList)
	return router, app
}

func postForm(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()
	w := postForm(router, "/admin/login", url.Values{"password": {config.ADMIN_PASSWORD}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestAdminGateRejectsAnonymous(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postForm(router, "/admin/album/create", url.Values{"name": {"Trip"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postForm(router, "/admin/login", url.Values{"password": {"not it"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAlbumCreateValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := login(t, router)

	w := postForm(router, "/admin/album/create",
		url.Values{"name": {"  "}, "cover_image_url": {"http://x/a.jpg"}}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestAlbumAndPhotoLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := login(t, router)

	w := postForm(router, "/admin/album/create",
		url.Values{"name": {"Trip"}, "cover_image_url": {"http://x/a.jpg"}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var album AlbumInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	assert.Equal(t, "Trip", album.Name)
	assert.Equal(t, "http://x/a.jpg", album.Cover)
	require.NotEmpty(t, album.ID)

	w = postForm(router, "/admin/photo/add",
		url.Values{"album_id": {album.ID}, "image_url": {"http://x/p1.jpg"}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/photo/list?album_id="+album.ID, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	list := httptest.NewRecorder()
	router.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	var photos []PhotoInfo
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, "http://x/p1.jpg", photos[0].ImageURL)

	w = postForm(router, "/admin/album/delete", url.Values{"album_id": {album.ID}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	list = httptest.NewRecorder()
	router.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	photos = nil
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &photos))
	assert.Empty(t, photos)
}
