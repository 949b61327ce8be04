package gallery

import (
	"context"
	"errors"
	"sync"

	"github.com/iaparraguez/Pagina-Fotos/logger"
	"github.com/iaparraguez/Pagina-Fotos/store"
)

// DeleteAlbum removes an album and all its photos in two phases: the photo
// deletes run first as independent calls, the album delete only runs when
// every one of them succeeded. On partial failure the album is kept and a
// CascadeError aggregating the failures is returned; already-deleted photos
// are not restored.
func (s *Service) DeleteAlbum(ctx context.Context, albumID string) error {
	if err := s.waitReady(ctx); err != nil {
		return err
	}
	photos, err := s.photos.Find(ctx, store.Filter{"album_id": albumID})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errs := make([]error, len(photos))
	for i, photo := range photos {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = s.photos.Delete(ctx, id)
		}(i, photo.ID)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		logger.L.Errorw("album delete aborted, photo cleanup incomplete",
			"album", albumID, "photos", len(photos), "failed", failed)
		return &CascadeError{AlbumID: albumID, Failed: failed, Err: errors.Join(errs...)}
	}
	return s.albums.Delete(ctx, albumID)
}
