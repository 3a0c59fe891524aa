// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// prettyAmounts lists every amount AmountCodec considers "round": each of
// 1..9 at every decimal order up to 10^18, terminated by 10^19 itself.
// Computed once at package init rather than hand-enumerated, matching the
// source loop's shape (j * 10^i for j in 1..9, i in 0..18) rather than its
// literal table.
var prettyAmounts = buildPrettyAmounts()

func buildPrettyAmounts() []uint64 {
	amounts := make([]uint64, 0, 172)
	order := uint64(1)
	for i := 0; i < 19; i++ {
		for j := uint64(1); j <= 9; j++ {
			amounts = append(amounts, j*order)
		}
		order *= 10
	}
	amounts = append(amounts, order)
	return amounts
}

// DecomposeAmount splits amount into the "pretty" digit chunks a coinbase
// or fusion transaction pays out as separate outputs: one chunk per
// nonzero decimal digit, with digits at or below dustThreshold (in
// aggregate) collapsed into a single dust chunk. Order matches the
// original decompose_amount_into_digits: ascending decimal order, with
// the dust chunk emitted at the point its accumulation first exceeds
// dustThreshold, or at the end if it never does.
func DecomposeAmount(amount, dustThreshold uint64) []uint64 {
	if amount == 0 {
		return nil
	}

	var out []uint64
	var dust uint64
	dustHandled := false
	order := uint64(1)

	for amount != 0 {
		chunk := (amount % 10) * order
		amount /= 10
		order *= 10

		if dust+chunk <= dustThreshold {
			dust += chunk
			continue
		}

		if !dustHandled && dust != 0 {
			out = append(out, dust)
			dustHandled = true
		}
		if chunk != 0 {
			out = append(out, chunk)
		}
	}

	if !dustHandled && dust != 0 {
		out = append(out, dust)
	}

	return out
}

// IsAmountApplicableInFusionTransactionInput reports whether amount is
// eligible as a fusion-transaction input: strictly below threshold, at or
// above the default dust threshold, and an exact member of prettyAmounts.
// amountPowerOfTen is the decade bucket (0 for 1..9, 1 for 10..90, ...)
// the caller can group inputs by.
func (p *ParameterSet) IsAmountApplicableInFusionTransactionInput(amount, threshold uint64) (amountPowerOfTen uint8, ok bool) {
	if amount >= threshold || amount < p.defaultDustThreshold {
		return 0, false
	}

	i := sort.Search(len(prettyAmounts), func(i int) bool { return prettyAmounts[i] >= amount })
	if i == len(prettyAmounts) || prettyAmounts[i] != amount {
		return 0, false
	}

	return uint8(i / 9), true
}

// FormatAmount renders an unsigned atomic amount as a fixed-point decimal
// string at NumberOfDecimalPlaces.
func (p *ParameterSet) FormatAmount(amount uint64) string {
	s := strconv.FormatUint(amount, 10)
	places := int(p.numberOfDecimalPlaces)

	if len(s) < places+1 {
		s = strings.Repeat("0", places+1-len(s)) + s
	}

	return s[:len(s)-places] + "." + s[len(s)-places:]
}

// FormatSignedAmount renders a signed atomic amount, prefixing "-" for
// negative values. Used for emission-change deltas, which can be
// negative after a fee penalty.
func (p *ParameterSet) FormatSignedAmount(amount int64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}

	s := p.FormatAmount(uint64(abs))
	if amount < 0 {
		s = "-" + s
	}
	return s
}

// ParseAmount parses a fixed-point decimal string into its atomic-unit
// representation at NumberOfDecimalPlaces, rejecting a fraction longer
// than that many digits (after stripping trailing zeros).
func (p *ParameterSet) ParseAmount(str string) (uint64, error) {
	s := strings.TrimSpace(str)
	places := int(p.numberOfDecimalPlaces)

	fractionSize := 0
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		fractionSize = len(s) - idx - 1
		for fractionSize > places && strings.HasSuffix(s, "0") {
			s = s[:len(s)-1]
			fractionSize--
		}
		if fractionSize > places {
			return 0, fmt.Errorf("%w: fractional part longer than %d digits", ErrParse, places)
		}
		s = s[:idx] + s[idx+1:]
	}

	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrParse)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: non-digit character %q", ErrParse, r)
		}
	}

	if fractionSize < places {
		s += strings.Repeat("0", places-fractionSize)
	}

	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return amount, nil
}
