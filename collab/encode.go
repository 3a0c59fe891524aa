package collab

import "fmt"

// CanonicalEncoder is a placeholder BinaryEncoder. The real CryptoNote
// wire format interleaves varint-encoded field widths this package does
// not reproduce; it trusts the Encodable's own Bytes() method for the
// byte count FusionRule needs, the same way the teacher's own message
// types serialize themselves rather than going through a shared codec.
type CanonicalEncoder struct{}

// Encode implements BinaryEncoder.
func (CanonicalEncoder) Encode(v Encodable) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("collab: cannot encode nil value")
	}
	return v.Bytes(), nil
}
