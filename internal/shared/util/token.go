package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns n random bytes as a hex string, for opaque share
// tokens and similar unguessable identifiers.
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; surface loudly.
		panic("util: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
