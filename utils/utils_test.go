package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderImageURL(t *testing.T) {
	assert.Equal(t, "https://placehold.co/600x400?text=Trip", PlaceholderImageURL("Trip"))
	assert.Equal(t, "https://placehold.co/600x400?text=Mi+Viaje", PlaceholderImageURL("Mi Viaje"))
	assert.Equal(t, "https://placehold.co/600x400?text=Sin+imagen", PlaceholderImageURL(""))
}

func TestRand8BytesToBase62(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := Rand8BytesToBase62()
		assert.NotEmpty(t, v)
		assert.False(t, seen[v], "random value repeated")
		seen[v] = true
	}
}
