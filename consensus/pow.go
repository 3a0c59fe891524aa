// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"fmt"
	"math/big"
)

var maxHash256 = new(big.Int).Lsh(big.NewInt(1), 256)

// checkHash reports whether hash, read as a little-endian 256-bit
// integer, satisfies difficulty: hash * difficulty must not exceed
// 2^256-1. This is the same comparison CryptoNote's check_hash performs
// via 256x64 multiplication; big.Int avoids reimplementing wide
// multiplication for what is, outside a hot mining loop, a cold path.
func checkHash(hash [32]byte, difficulty uint64) bool {
	if difficulty == 0 {
		return false
	}

	reversed := make([]byte, 32)
	for i, b := range hash {
		reversed[31-i] = b
	}
	h := new(big.Int).SetBytes(reversed)

	product := new(big.Int).Mul(h, new(big.Int).SetUint64(difficulty))
	return product.Cmp(maxHash256) < 0
}

// CheckProofOfWork validates a block's proof of work, dispatching on
// major version: version 1 checks the PoW hash alone, versions 2 to 4
// additionally fold the merge-mining branch up from auxBlockHash, using
// mmTag.Depth as the left/right path bits, and require the result to equal
// mmTag.MerkleRoot. Any other major version is rejected. genesisHash only
// bounds the branch length (by its bit length); it is not an input to the
// Merkle computation.
func (p *ParameterSet) CheckProofOfWork(header BlockHeader, hashingBlob []byte, currentDifficulty uint64, genesisHash Hash, mmTag *MergeMiningTag, branch []Hash, auxBlockHash Hash) error {
	hash := p.longHasher.LongHash(hashingBlob)

	if !checkHash(hash, currentDifficulty) {
		return fmt.Errorf("%w: hash does not satisfy difficulty %d", ErrMergeMiningViolation, currentDifficulty)
	}

	if header.MajorVersion == 1 {
		return nil
	}

	if header.MajorVersion < 2 || header.MajorVersion > 4 {
		return fmt.Errorf("%w: unknown block major version %d", ErrMergeMiningViolation, header.MajorVersion)
	}

	if mmTag == nil {
		return fmt.Errorf("%w: merge mining tag not found in parent block extra", ErrMergeMiningViolation)
	}

	if len(branch) > 8*len(genesisHash) {
		return fmt.Errorf("%w: blockchain branch too long (%d entries)", ErrMergeMiningViolation, len(branch))
	}

	branchHashes := make([][32]byte, len(branch))
	for i, h := range branch {
		branchHashes[i] = h
	}

	root := p.merkleBrancher.TreeHashFromBranch(branchHashes, auxBlockHash, mmTag.Depth)
	if Hash(root) != mmTag.MerkleRoot {
		return fmt.Errorf("%w: auxiliary block hash not found in merkle tree", ErrMergeMiningViolation)
	}

	return nil
}
