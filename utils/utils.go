package utils

import (
	"crypto/rand"
	"math/big"
	"net/url"
)

// PlaceholderImageURL builds a generated cover image for albums without one.
func PlaceholderImageURL(label string) string {
	if label == "" {
		label = "Sin imagen"
	}
	return "https://placehold.co/600x400?text=" + url.QueryEscape(label)
}

func Rand8BytesToBase62() string {
	buf := make([]byte, 8)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	var i big.Int
	return i.SetBytes(buf).Text(62)
}
