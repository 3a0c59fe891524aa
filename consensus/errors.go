// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "errors"

// Sentinel errors. Call sites wrap these with fmt.Errorf("...: %w", ...)
// to attach detail; callers should compare with errors.Is against the
// sentinel, never against the wrapped string.
var (
	// ErrInvalidParameter is returned by ParameterSetBuilder.Build when a
	// field fails its validation rule.
	ErrInvalidParameter = errors.New("consensus: invalid parameter")

	// ErrParse is returned by ParseAmount on malformed input.
	ErrParse = errors.New("consensus: amount parse error")

	// ErrBlockTooBig is returned by ConstructMinerTx when the block is
	// larger than twice the effective median size, or when the coinbase
	// extra field exceeds the reserved coinbase blob size.
	ErrBlockTooBig = errors.New("consensus: block exceeds cumulative size limit")

	// ErrRewardMismatch is returned by CoinbaseBuilder when the
	// constructed outputs do not sum to the computed block reward.
	ErrRewardMismatch = errors.New("consensus: coinbase output sum does not match block reward")

	// errOverflow marks an internal 128-bit overflow in difficulty
	// arithmetic. NextDifficulty never returns it directly — on overflow
	// it floors the result to MinimumDifficulty per the legacy behavior.
	errOverflow = errors.New("consensus: difficulty arithmetic overflow")

	// ErrMergeMiningViolation is returned by CheckProofOfWork for every
	// rejection: a hash that does not satisfy the difficulty, an unknown
	// major version, or (from version 2) a merge-mining tag, branch or
	// root that does not validate.
	ErrMergeMiningViolation = errors.New("consensus: merge-mining tag validation failed")

	// ErrAddressPrefixMismatch is returned when a decoded address's
	// network prefix does not match the expected ParameterSet.
	ErrAddressPrefixMismatch = errors.New("consensus: address prefix mismatch")
)
