package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlbumCoverFallbacks(t *testing.T) {
	full := &Album{Name: "Trip", CoverImageURL: "http://x/a.jpg", ThumbnailURL: "http://x/a_t.jpg"}
	assert.Equal(t, "http://x/a.jpg", full.Cover())
	assert.Equal(t, "http://x/a_t.jpg", full.Thumb())

	thumbOnly := &Album{Name: "Trip", ThumbnailURL: "http://x/a_t.jpg"}
	assert.Equal(t, "http://x/a_t.jpg", thumbOnly.Cover())
	assert.Equal(t, "http://x/a_t.jpg", thumbOnly.Thumb())

	coverOnly := &Album{Name: "Trip", CoverImageURL: "http://x/a.jpg"}
	assert.Equal(t, "http://x/a.jpg", coverOnly.Thumb())

	bare := &Album{Name: "Mi Viaje"}
	assert.Contains(t, bare.Cover(), "placehold.co")
	assert.Contains(t, bare.Cover(), "Mi+Viaje")
	assert.Equal(t, bare.Cover(), bare.Thumb())
}
