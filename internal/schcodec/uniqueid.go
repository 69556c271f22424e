package schcodec

import (
	"math/rand"
	"time"
)

// uniqueIDSource is a package-level PRNG seeded once from wall-clock time.
// Altium's own unique-ID scheme is undocumented (see the design notes'
// open question); this only needs to produce 8 uppercase ASCII characters,
// not match Altium's exact algorithm.
var uniqueIDSource = rand.New(rand.NewSource(time.Now().UnixNano()))

const uniqueIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateUniqueID returns an 8-character uppercase identifier for a
// RECORD=44/45 UniqueID field.
func generateUniqueID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = uniqueIDAlphabet[uniqueIDSource.Intn(len(uniqueIDAlphabet))]
	}
	return string(b)
}
