// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"math/bits"
	"sort"
)

// lwmaAdjust is Zawy's LWMA tuning constant, shared by the v3 and v4
// retargeting algorithms.
const lwmaAdjust = 0.9909

// mul128 widens a*b into a 128-bit product, matching the original
// intrinsic: low is the product's low 64 bits, high its high 64 bits.
func mul128(a, b uint64) (low, high uint64) {
	high, low = bits.Mul64(a, b)
	return low, high
}

// NextDifficulty dispatches to the retargeting algorithm selected by
// majorVersion and floors the result at 1, so a miner never sees a zero
// target. timestamps and cumulativeDifficulties must be aligned,
// oldest-first, and are not mutated.
func (p *ParameterSet) NextDifficulty(majorVersion uint8, timestamps []uint64, cumulativeDifficulties []uint64) uint64 {
	var next uint64
	switch {
	case majorVersion >= 4:
		next = p.nextDifficultyV4(timestamps, cumulativeDifficulties)
	case majorVersion == 3:
		next = p.nextDifficultyV3(timestamps, cumulativeDifficulties)
	case majorVersion == 2:
		next = p.nextDifficultyV2(timestamps, cumulativeDifficulties)
	default:
		next = p.nextDifficultyV1(timestamps, cumulativeDifficulties)
	}

	if next < 1 {
		next = 1
	}
	return next
}

// nextDifficultyV4 is Zawy's LWMA retarget (DifficultyWindow(4) solvetime
// window, low clamp only, adjust 0.9909).
func (p *ParameterSet) nextDifficultyV4(timestamps, cumulativeDifficulties []uint64) uint64 {
	window := p.DifficultyWindow(4)
	if len(timestamps) > window {
		timestamps = timestamps[:window]
		cumulativeDifficulties = cumulativeDifficulties[:window]
	}

	length := len(timestamps)
	if length <= 1 {
		return 1
	}

	target := int64(p.difficultyTarget)

	var lwma int64
	for i := 1; i < length; i++ {
		solveTime := int64(timestamps[i]) - int64(timestamps[i-1])
		if solveTime < -int64(p.blockFutureTimeLimit) {
			solveTime = -int64(p.blockFutureTimeLimit)
		}
		lwma += solveTime * int64(i)
	}

	minWST := target * int64(length) * int64(length-1) / 8
	if lwma < minWST {
		lwma = minWST
	}

	totalWork := cumulativeDifficulties[length-1] - cumulativeDifficulties[0]
	aimedTarget := uint64(lwmaAdjust * (float64(length) / 2.0) * float64(target))

	low, high := mul128(totalWork, aimedTarget)
	if high != 0 {
		return 0
	}

	return low / uint64(lwma)
}

// nextDifficultyV3 is Zawy's LWMA retarget with the -5T/+6T clamp that
// closed the v2 exploit.
func (p *ParameterSet) nextDifficultyV3(timestamps, cumulativeDifficulties []uint64) uint64 {
	window := p.DifficultyWindow(3)
	if len(timestamps) > window {
		timestamps = timestamps[:window]
		cumulativeDifficulties = cumulativeDifficulties[:window]
	}

	length := len(timestamps)
	if length <= 1 {
		return 1
	}

	target := int64(p.difficultyTarget)

	var weightedSolveTimes int64
	for i := 1; i < length; i++ {
		solveTime := int64(timestamps[i]) - int64(timestamps[i-1])
		if solveTime > 6*target {
			solveTime = 6 * target
		}
		if solveTime < -5*target {
			solveTime = -5 * target
		}
		weightedSolveTimes += solveTime * int64(i)
	}

	minWST := target * int64(length) * int64(length+1) / 8
	if weightedSolveTimes < minWST {
		weightedSolveTimes = minWST
	}

	totalWork := cumulativeDifficulties[length-1] - cumulativeDifficulties[0]
	aimedTarget := uint64(lwmaAdjust * (float64(length+1) / 2.0) * float64(target))

	low, high := mul128(totalWork, aimedTarget)
	if high != 0 {
		return 0
	}

	return low / uint64(weightedSolveTimes)
}

// nextDifficultyV2 is the first Zawy LWMA port: despite the name, its
// cut-window bounds are computed from the legacy (v1) DIFFICULTY_WINDOW
// and DIFFICULTY_CUT constants, not DifficultyWindow(2) — only the
// initial resize uses the v2 window size. This mirrors the shipped
// implementation exactly rather than the more "consistent" reading a
// fresh implementation would reach for.
func (p *ParameterSet) nextDifficultyV2(timestamps, cumulativeDifficulties []uint64) uint64 {
	window2 := p.DifficultyWindow(2)
	if len(timestamps) > window2 {
		timestamps = timestamps[:window2]
		cumulativeDifficulties = cumulativeDifficulties[:window2]
	}

	length := len(timestamps)
	if length <= 1 {
		return 1
	}

	sorted := append([]uint64(nil), timestamps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	legacyWindow := p.difficultyWindow
	legacyCut := p.difficultyCut

	var cutBegin, cutEnd int
	if length <= legacyWindow-2*legacyCut {
		cutBegin, cutEnd = 0, length
	} else {
		cutBegin = (length - (legacyWindow - 2*legacyCut) + 1) / 2
		cutEnd = cutBegin + (legacyWindow - 2*legacyCut)
	}

	timeSpan := sorted[cutEnd-1] - sorted[cutBegin]
	if timeSpan == 0 {
		timeSpan = 1
	}

	totalWork := cumulativeDifficulties[cutEnd-1] - cumulativeDifficulties[cutBegin]

	low, high := mul128(totalWork, p.difficultyTarget)
	if high != 0 || low+(timeSpan-1) < low {
		return 0
	}

	return (low + timeSpan - 1) / timeSpan
}

// nextDifficultyV1 is the original cut-trim windowed average: the window
// is sorted, the fastest and slowest DifficultyCut blocks on each tail
// are trimmed, and the target is applied to the remaining span.
func (p *ParameterSet) nextDifficultyV1(timestamps, cumulativeDifficulties []uint64) uint64 {
	window := p.DifficultyWindow(1)
	cut := p.difficultyCut

	if len(timestamps) > window {
		timestamps = timestamps[:window]
		cumulativeDifficulties = cumulativeDifficulties[:window]
	}

	length := len(timestamps)
	if length <= 1 {
		return 1
	}

	sorted := append([]uint64(nil), timestamps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var cutBegin, cutEnd int
	if length <= window-2*cut {
		cutBegin, cutEnd = 0, length
	} else {
		cutBegin = (length - (window - 2*cut) + 1) / 2
		cutEnd = cutBegin + (window - 2*cut)
	}

	timeSpan := sorted[cutEnd-1] - sorted[cutBegin]
	if timeSpan == 0 {
		timeSpan = 1
	}

	totalWork := cumulativeDifficulties[cutEnd-1] - cumulativeDifficulties[cutBegin]

	low, high := mul128(totalWork, p.difficultyTarget)
	const maxUint64 = ^uint64(0)
	if high != 0 || maxUint64-low < timeSpan-1 {
		return 0
	}

	return (low + timeSpan - 1) / timeSpan
}
