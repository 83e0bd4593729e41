package testutil

import (
	"math/rand"
)

// RandomBytes returns length bytes from math/rand. It panics if the source
// fails.
func RandomBytes(length int) []byte {
	slice := make([]byte, length)
	_, err := rand.Read(slice)
	if err != nil {
		panic(err)
	}
	return slice
}

// RandomText returns a random string of printable ASCII and multi-byte runes.
func RandomText(runes int) string {
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz0123456789 éü中文😀")
	text := make([]rune, runes)
	for i := range text {
		text[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(text)
}
