package collab

import (
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// Curve25519Derivation is a placeholder KeyDerivation. CryptoNote stealth
// addresses run over a twisted-Edwards curve with its own derivation
// convention; this implementation only needs to behave like a
// Diffie-Hellman shared-secret scheme for the consensus package's own
// tests, and uses the closest stdlib-adjacent curve the examples import.
type Curve25519Derivation struct{}

// GenerateKeyDerivation implements KeyDerivation.
func (Curve25519Derivation) GenerateKeyDerivation(viewPublic PublicKey, txSecret SecretKey) (Derivation, error) {
	var shared [32]byte
	curve25519.ScalarMult(&shared, (*[32]byte)(&txSecret), (*[32]byte)(&viewPublic))

	var zero [32]byte
	if shared == zero {
		return Derivation{}, fmt.Errorf("collab: degenerate key derivation")
	}

	return Derivation(shared), nil
}

// DerivePublicKey implements KeyDerivation. It folds the output index into
// the derivation and scalar-multiplies spendPublic by the result, which is
// sufficient for the one-time-key uniqueness property CoinbaseBuilder's
// tests rely on without reproducing the real derive_public_key scheme.
func (Curve25519Derivation) DerivePublicKey(d Derivation, outputIndex int, spendPublic PublicKey) (PublicKey, error) {
	scalar := d
	scalar[0] ^= byte(outputIndex)
	scalar[1] ^= byte(outputIndex >> 8)
	scalar[2] ^= byte(outputIndex >> 16)
	scalar[3] ^= byte(outputIndex >> 24)

	var out [32]byte
	curve25519.ScalarMult(&out, (*[32]byte)(&scalar), (*[32]byte)(&spendPublic))
	return PublicKey(out), nil
}
