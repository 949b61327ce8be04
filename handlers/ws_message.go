package handlers

const (
	FeedTypeAlbums    = "albums"
	FeedTypePhotos    = "photos"
	FeedTypeAlbumGone = "album_gone"
)

// FeedRequest is what a connected viewer sends to follow an album's photos.
type FeedRequest struct {
	Topic   string `json:"topic"`
	AlbumID string `json:"album_id"`
}

// FeedMessage is one pushed snapshot. Albums snapshots are sent to every
// viewer; photo snapshots only to viewers that asked for that album.
type FeedMessage struct {
	Type    string      `json:"type"`
	AlbumID string      `json:"album_id,omitempty"`
	Albums  []AlbumInfo `json:"albums,omitempty"`
	Photos  []PhotoInfo `json:"photos,omitempty"`
}
