// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"encoding/hex"
	"fmt"

	"github.com/monetaverde/monetaverde-core/internal/clog"
)

// GenesisBlock derives the deterministic genesis block template from the
// parameter set's hard-coded coinbase blob. The coinbase transaction
// itself is never generated fresh — it is parsed once from
// genesisCoinbaseTxHex — because a freshly constructed coinbase draws an
// ephemeral keypair and would differ on every run, where the genesis
// block must be identical for every node.
func (p *ParameterSet) GenesisBlock() (BlockTemplate, error) {
	blob, err := hex.DecodeString(p.genesisCoinbaseTxHex)
	if err != nil {
		return BlockTemplate{}, fmt.Errorf("%w: failed to decode genesis coinbase hex: %v", ErrInvalidParameter, err)
	}

	minerTx, err := p.binaryEncoderDecodeCoinbase(blob)
	if err != nil {
		return BlockTemplate{}, fmt.Errorf("%w: failed to parse genesis coinbase blob: %v", ErrInvalidParameter, err)
	}

	nonce := uint32(10000)
	if p.isTestnet {
		nonce++
	}

	clog.For("consensus.genesis").WithField("nonce", nonce).Debug("derived genesis block")

	return BlockTemplate{
		Header: BlockHeader{
			MajorVersion: 1,
			MinorVersion: 0,
			Timestamp:    0,
			Nonce:        nonce,
		},
		MinerTx: minerTx,
	}, nil
}

// binaryEncoderDecodeCoinbase reconstructs the minimal Transaction shape
// GenesisBlock needs from the raw blob: the version byte and a single
// BaseInput at block index 0. Outputs and extra are not decoded. Full
// binary deserialization is a caller concern (BinaryEncoder is an
// encode-only collaborator in this package); the only failure this
// reports is an empty blob.
func (p *ParameterSet) binaryEncoderDecodeCoinbase(blob []byte) (Transaction, error) {
	if len(blob) == 0 {
		return Transaction{}, fmt.Errorf("empty coinbase blob")
	}

	return Transaction{
		Version: blob[0],
		Inputs:  []TransactionInput{{Base: &BaseInput{BlockIndex: 0}}},
	}, nil
}
