// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "math/big"

const log2FixPrecision = 20

// log2Fix computes floor(log2(x) * 2^log2FixPrecision) using the
// iterative bit-shift-and-square method, never calling into floating
// point. x must be nonzero.
func log2Fix(x uint64) uint64 {
	b := uint64(1) << (log2FixPrecision - 1)
	y := uint64(0)

	for x >= uint64(2)<<log2FixPrecision {
		x >>= 1
		y += uint64(1) << log2FixPrecision
	}

	z := x
	for i := 0; i < log2FixPrecision; i++ {
		z = (z * z) >> log2FixPrecision
		if z >= uint64(2)<<log2FixPrecision {
			z >>= 1
			y += b
		}
		b >>= 1
	}

	return y
}

// getPenalizedAmount applies the quadratic size penalty: an amount is
// scaled by currentBlockSize*(2*medianSize-currentBlockSize)/medianSize^2
// once the block exceeds its median, using a 128-bit intermediate product
// so neither the multiply nor the two divisions by medianSize overflow.
func getPenalizedAmount(amount uint64, medianSize, currentBlockSize uint64) uint64 {
	if amount == 0 {
		return 0
	}
	if currentBlockSize <= medianSize {
		return amount
	}

	product := new(big.Int).Mul(
		new(big.Int).SetUint64(currentBlockSize),
		new(big.Int).SetUint64(2*medianSize-currentBlockSize),
	)
	product.Mul(product, new(big.Int).SetUint64(amount))

	median := new(big.Int).SetUint64(medianSize)
	product.Div(product, median)
	product.Div(product, median)

	return product.Uint64()
}

// GetBlockReward computes a block's miner reward and the signed change to
// total emission, per the CryptoNote log2-based emission curve. ok is
// false when currentBlockSize exceeds twice the effective median size —
// the block must be rejected, not rewarded. diff must be nonzero and
// below 1<<(64-log2FixPrecision); callers that cannot guarantee this
// should treat diff==0 as a programming error, not a consensus failure.
func (p *ParameterSet) GetBlockReward(majorVersion uint8, medianSize, currentBlockSize uint64, fee uint64, diff uint64) (reward uint64, emissionChange int64, ok bool) {
	baseReward := log2Fix(diff<<log2FixPrecision) << log2FixPrecision

	fullRewardZone := p.BlockGrantedFullRewardZone(majorVersion)
	if medianSize < fullRewardZone {
		medianSize = fullRewardZone
	}

	if currentBlockSize > 2*medianSize {
		return 0, 0, false
	}

	penalizedBaseReward := getPenalizedAmount(baseReward, medianSize, currentBlockSize)

	penalizedFee := fee
	if majorVersion >= 3 || p.coinVersion == 1 {
		penalizedFee = getPenalizedAmount(fee, medianSize, currentBlockSize)
	}

	emissionChange = int64(penalizedBaseReward) - (int64(fee) - int64(penalizedFee))
	reward = penalizedBaseReward + penalizedFee

	return reward, emissionChange, true
}
