package collab

import "golang.org/x/crypto/blake2b"

// Blake2bLongHash is a placeholder LongHasher. It is not Cryptonight —
// wiring the real hash family is the node's job — but it gives the
// consensus package a deterministic, cheap hash to validate against in
// tests and in any caller that has not yet linked the real thing.
type Blake2bLongHash struct{}

// LongHash implements LongHasher.
func (Blake2bLongHash) LongHash(blob []byte) [32]byte {
	return blake2b.Sum256(blob)
}
