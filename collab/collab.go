// Package collab defines the external collaborator contracts the
// consensus package depends on but does not implement: the proof-of-work
// hash, the wire codec, stealth-address key derivation, merge-mining
// Merkle-branch hashing and base58 address encoding. A node wires real
// implementations (Cryptonight, ring-signature key derivation, the actual
// base58 codec) behind these; the defaults here exist so the consensus
// package is runnable and testable on its own.
package collab

// PublicKey and SecretKey are opaque 32-byte curve points/scalars. Their
// cryptographic validity is a caller concern; this package never inspects
// the bytes beyond length.
type PublicKey [32]byte

// SecretKey is an opaque 32-byte scalar.
type SecretKey [32]byte

// Derivation is the shared secret produced by GenerateKeyDerivation.
type Derivation [32]byte

// LongHasher computes the proof-of-work hash of a block's hashing blob.
// Stands in for the Cryptonight family, which is out of scope here.
type LongHasher interface {
	LongHash(blob []byte) [32]byte
}

// Encodable is anything with a canonical byte representation. consensus.
// Transaction implements it in the teacher's own Bytes()-method style so
// this package never has to import the consensus package's types back.
type Encodable interface {
	Bytes() []byte
}

// BinaryEncoder serializes an Encodable to its canonical wire form, used
// only to size-check fusion transactions. The real wire format
// (field ordering, varint widths, signature encoding) is a caller concern;
// this package only needs a stable byte count.
type BinaryEncoder interface {
	Encode(v Encodable) ([]byte, error)
}

// KeyDerivation implements the Diffie-Hellman stealth-address primitives
// CoinbaseBuilder needs: a per-output shared secret and the one-time
// public key derived from it.
type KeyDerivation interface {
	GenerateKeyDerivation(viewPublic PublicKey, txSecret SecretKey) (Derivation, error)
	DerivePublicKey(d Derivation, outputIndex int, spendPublic PublicKey) (PublicKey, error)
}

// MerkleBrancher recomputes a Merkle root from a leaf and its branch,
// used to validate merge-mining tags.
type MerkleBrancher interface {
	TreeHashFromBranch(branch [][32]byte, leaf [32]byte, path uint32) [32]byte
}

// AddressCodec encodes/decodes base58 CryptoNote account addresses.
type AddressCodec interface {
	Encode(prefix uint64, spendPublic, viewPublic PublicKey) string
	Decode(addr string) (prefix uint64, spendPublic, viewPublic PublicKey, err error)
}
