// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"fmt"

	"github.com/monetaverde/monetaverde-core/collab"
)

// CoinbaseParams bundles ConstructMinerTx's per-block inputs.
type CoinbaseParams struct {
	MajorVersion       uint8
	Height             uint32
	MedianSize         uint64
	CurrentBlockSize   uint64
	Fee                uint64
	Difficulty         uint64
	MinerAddress       AccountPublicAddress
	ExtraNonce         []byte
	MaxOutputs         int
	TransactionSecretKey collab.SecretKey
	TransactionPublicKey collab.PublicKey
}

// ConstructMinerTx builds a block's coinbase transaction: it computes the
// block reward, decomposes it into "pretty" output amounts, collapses
// excess outputs into MaxOutputs, and derives each output's one-time
// stealth key from the miner's address and the transaction's ephemeral
// keypair. The caller supplies the ephemeral keypair (TransactionSecretKey
// must be the secret half of TransactionPublicKey) rather than this
// package generating one, so genesis and test callers can supply a fixed
// pair for determinism.
func (p *ParameterSet) ConstructMinerTx(params CoinbaseParams) (Transaction, int64, error) {
	if params.MaxOutputs < 1 {
		return Transaction{}, 0, fmt.Errorf("%w: maxOutputs must be non-zero", ErrInvalidParameter)
	}

	reward, emissionChange, ok := p.GetBlockReward(params.MajorVersion, params.MedianSize, params.CurrentBlockSize, params.Fee, params.Difficulty)
	if !ok {
		return Transaction{}, 0, fmt.Errorf("%w: block is too big", ErrBlockTooBig)
	}

	outAmounts := DecomposeAmount(reward, p.defaultDustThreshold)
	for len(outAmounts) > params.MaxOutputs {
		outAmounts[len(outAmounts)-2] += outAmounts[len(outAmounts)-1]
		outAmounts = outAmounts[:len(outAmounts)-1]
	}

	derivation, err := p.keyDerivation.GenerateKeyDerivation(params.MinerAddress.ViewPublicKey, params.TransactionSecretKey)
	if err != nil {
		return Transaction{}, 0, fmt.Errorf("while creating outs: failed to generate_key_derivation: %w", err)
	}

	outputs := make([]KeyOutput, len(outAmounts))
	var summaryAmounts uint64
	for i, amount := range outAmounts {
		outKey, err := p.keyDerivation.DerivePublicKey(derivation, i, params.MinerAddress.SpendPublicKey)
		if err != nil {
			return Transaction{}, 0, fmt.Errorf("while creating outs: failed to derive_public_key at index %d: %w", i, err)
		}

		outputs[i] = KeyOutput{Amount: amount, Key: outKey}
		summaryAmounts += amount
	}

	if summaryAmounts != reward {
		return Transaction{}, 0, fmt.Errorf("%w: summaryAmounts=%d blockReward=%d", ErrRewardMismatch, summaryAmounts, reward)
	}

	extra := []ExtraField{{Tag: ExtraTagPubkey, Data: params.TransactionPublicKey[:]}}
	extraSize := 1 + len(params.TransactionPublicKey)
	if len(params.ExtraNonce) > 0 {
		extra = append(extra, ExtraField{Tag: ExtraTagNonce, Data: params.ExtraNonce})
		extraSize += 1 + len(params.ExtraNonce)
	}

	if uint64(extraSize) > p.coinbaseBlobReservedSize {
		return Transaction{}, 0, fmt.Errorf("%w: extra field size %d exceeds coinbaseBlobReservedSize %d", ErrBlockTooBig, extraSize, p.coinbaseBlobReservedSize)
	}

	tx := Transaction{
		Version:    1,
		UnlockTime: uint64(params.Height) + uint64(p.minedMoneyUnlockWindow),
		Inputs:     []TransactionInput{{Base: &BaseInput{BlockIndex: params.Height}}},
		Outputs:    outputs,
		Extra:      extra,
	}

	return tx, emissionChange, nil
}
