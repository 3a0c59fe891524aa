package collab

import "github.com/dchest/siphash"

// SipMerkleBrancher is a placeholder MerkleBrancher. The real
// tree_hash_from_branch runs the hash family's own compression function
// pairwise up the branch; this implementation folds the branch with
// siphash instead, which is enough to exercise CheckProofOfWork's branch
// walking and bit-path logic without the real hash linked in.
type SipMerkleBrancher struct {
	// Key is the siphash key. The zero value uses an all-zero key, which
	// is fine for a placeholder but callers validating real merge-mining
	// tags should set one.
	Key [16]byte
}

// TreeHashFromBranch implements MerkleBrancher.
func (m SipMerkleBrancher) TreeHashFromBranch(branch [][32]byte, leaf [32]byte, path uint32) [32]byte {
	k0 := le64(m.Key[0:8])
	k1 := le64(m.Key[8:16])

	cur := leaf
	for i, sibling := range branch {
		var left, right [32]byte
		if (path>>uint(i))&1 == 0 {
			left, right = cur, sibling
		} else {
			left, right = sibling, cur
		}

		buf := append(append([]byte{}, left[:]...), right[:]...)
		h := siphash.Hash(k0, k1, buf)

		var next [32]byte
		for b := 0; b < 32; b += 8 {
			putLe64(next[b:b+8], h)
		}
		cur = next
	}

	return cur
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

func putLe64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}
