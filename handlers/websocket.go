package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/iaparraguez/Pagina-Fotos/logger"
	"github.com/iaparraguez/Pagina-Fotos/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func(data []byte) bool

type FeedClient struct {
	fun SendSocketFunc
}

// ConnectedViewers tracks every open gallery feed, keyed by connection id.
var ConnectedViewers = cmap.New[*FeedClient]()

// Feed streams live snapshots to one viewer. Every viewer gets the album
// list; sending {"topic":"photos","album_id":...} additionally follows that
// album and its photos until another one is requested. All subscriptions are
// cancelled when the socket closes.
func (app *App) Feed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L.Warnw("feed upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	isConnected := true
	client := FeedClient{}
	client.fun = func(data []byte) bool {
		writeMu.Lock()
		defer writeMu.Unlock()
		if !isConnected {
			return false
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.L.Debugw("feed write failed", "err", err)
			isConnected = false
			return false
		}
		return true
	}
	id := uuid.NewString()
	ConnectedViewers.Set(id, &client)
	defer ConnectedViewers.Remove(id)

	push := func(msg FeedMessage) {
		data, err := json.Marshal(msg)
		if err != nil {
			return
		}
		client.fun(data)
	}

	ctx := c.Request.Context()
	cancelAlbums, err := app.Gallery.SubscribeAlbums(ctx, func(albums []*models.Album) {
		push(FeedMessage{Type: FeedTypeAlbums, Albums: NewAlbumInfoList(albums)})
	})
	if err != nil {
		logger.L.Warnw("feed albums subscription failed", "err", err)
		return
	}
	defer cancelAlbums()

	// Per-album subscriptions of the current viewer; swapped on each request.
	var cancelPhotos, cancelAlbumDoc func()
	detachAlbum := func() {
		if cancelPhotos != nil {
			cancelPhotos()
			cancelPhotos = nil
		}
		if cancelAlbumDoc != nil {
			cancelAlbumDoc()
			cancelAlbumDoc = nil
		}
	}
	defer detachAlbum()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			writeMu.Lock()
			isConnected = false
			writeMu.Unlock()
			break
		}
		if string(message) == "ping" {
			client.fun([]byte("pong"))
			continue
		}
		if string(message) == "pong" {
			continue
		}
		r := FeedRequest{}
		if err := json.Unmarshal(message, &r); err != nil || r.Topic != FeedTypePhotos || r.AlbumID == "" {
			continue
		}
		detachAlbum()
		albumID := r.AlbumID
		cancelAlbumDoc, err = app.Gallery.SubscribeAlbum(ctx, albumID, func(_ *models.Album, found bool) {
			if !found {
				push(FeedMessage{Type: FeedTypeAlbumGone, AlbumID: albumID})
			}
		})
		if err != nil {
			break
		}
		cancelPhotos, err = app.Gallery.SubscribePhotosByAlbum(ctx, albumID, func(photos []*models.Photo) {
			push(FeedMessage{Type: FeedTypePhotos, AlbumID: albumID, Photos: NewPhotoInfoList(photos)})
		})
		if err != nil {
			break
		}
	}
}
