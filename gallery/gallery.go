// Package gallery keeps the album and photo views of the site in sync with
// the document store. Reads are live subscriptions pushing full snapshots;
// writes never touch local state, the follow-up push is the only update
// channel.
package gallery

import (
	"context"
	"strings"

	"github.com/iaparraguez/Pagina-Fotos/models"
	"github.com/iaparraguez/Pagina-Fotos/store"
)

// Identity gates every data operation: nothing is queried or written until
// some identity exists, even a degraded local one.
type Identity interface {
	Ready() <-chan struct{}
	UserID() string
}

type AlbumSource interface {
	Create(ctx context.Context, album *models.Album) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Album, error)
	Find(ctx context.Context, filter store.Filter) ([]*models.Album, error)
	Subscribe(filter store.Filter, fn store.Snapshot[*models.Album]) (cancel func())
	SubscribeDocument(id string, fn store.DocumentSnapshot[*models.Album]) (cancel func())
}

type PhotoSource interface {
	Create(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter store.Filter) ([]*models.Photo, error)
	Subscribe(filter store.Filter, fn store.Snapshot[*models.Photo]) (cancel func())
}

type Service struct {
	identity Identity
	albums   AlbumSource
	photos   PhotoSource
}

func New(identity Identity, albums AlbumSource, photos PhotoSource) *Service {
	return &Service{identity: identity, albums: albums, photos: photos}
}

func (s *Service) waitReady(ctx context.Context) error {
	select {
	case <-s.identity.Ready():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubscribeAlbums opens a live subscription to all albums, newest first. The
// cancel func must be called when the consumer stops rendering the list.
func (s *Service) SubscribeAlbums(ctx context.Context, fn func([]*models.Album)) (cancel func(), err error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.albums.Subscribe(nil, fn), nil
}

// SubscribeAlbum follows one album. fn observes found=false when the album is
// deleted while subscribed; the consumer must treat it as gone.
func (s *Service) SubscribeAlbum(ctx context.Context, albumID string, fn func(*models.Album, bool)) (cancel func(), err error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.albums.SubscribeDocument(albumID, fn), nil
}

// SubscribePhotosByAlbum follows the photos of one album, newest upload first.
func (s *Service) SubscribePhotosByAlbum(ctx context.Context, albumID string, fn func([]*models.Photo)) (cancel func(), err error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.photos.Subscribe(store.Filter{"album_id": albumID}, fn), nil
}

type AlbumDraft struct {
	Name          string
	CoverImageURL string
	ThumbnailURL  string
	Description   string
}

// CreateAlbum validates locally, then issues a single create tagged with the
// current identity. Validation failures never reach the store.
func (s *Service) CreateAlbum(ctx context.Context, draft AlbumDraft) (*models.Album, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(draft.CoverImageURL) == "" && strings.TrimSpace(draft.ThumbnailURL) == "" {
		return nil, &ValidationError{Field: "cover_image_url", Reason: "at least one image URL is required"}
	}
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	album := &models.Album{
		Name:          strings.TrimSpace(draft.Name),
		CoverImageURL: strings.TrimSpace(draft.CoverImageURL),
		ThumbnailURL:  strings.TrimSpace(draft.ThumbnailURL),
		Description:   draft.Description,
		CreatedBy:     s.identity.UserID(),
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

type PhotoDraft struct {
	AlbumID  string
	ImageURL string
	Title    string
	Caption  string
}

// AddPhoto validates locally and issues a single create. Same non-optimistic
// semantics as CreateAlbum.
func (s *Service) AddPhoto(ctx context.Context, draft PhotoDraft) (*models.Photo, error) {
	if strings.TrimSpace(draft.AlbumID) == "" {
		return nil, &ValidationError{Field: "album_id", Reason: "no album selected"}
	}
	if strings.TrimSpace(draft.ImageURL) == "" {
		return nil, &ValidationError{Field: "image_url", Reason: "required"}
	}
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	photo := &models.Photo{
		AlbumID:    strings.TrimSpace(draft.AlbumID),
		ImageURL:   strings.TrimSpace(draft.ImageURL),
		Title:      draft.Title,
		Caption:    draft.Caption,
		UploadedBy: s.identity.UserID(),
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// DeletePhoto removes a single photo.
func (s *Service) DeletePhoto(ctx context.Context, photoID string) error {
	if err := s.waitReady(ctx); err != nil {
		return err
	}
	return s.photos.Delete(ctx, photoID)
}

// Albums returns the current album list without opening a subscription.
func (s *Service) Albums(ctx context.Context) ([]*models.Album, error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.albums.Find(ctx, nil)
}

// Album returns one album, or store.ErrNotFound for a dangling id.
func (s *Service) Album(ctx context.Context, albumID string) (*models.Album, error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.albums.Get(ctx, albumID)
}

// PhotosByAlbum returns the current photo list of one album.
func (s *Service) PhotosByAlbum(ctx context.Context, albumID string) ([]*models.Photo, error) {
	if err := s.waitReady(ctx); err != nil {
		return nil, err
	}
	return s.photos.Find(ctx, store.Filter{"album_id": albumID})
}
