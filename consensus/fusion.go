// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "sort"

// IsFusionTransactionAmounts reports whether a transaction whose input
// and output amounts are inputsAmounts/outputsAmounts, and whose encoded
// size is size bytes, qualifies as a fusion transaction: small enough,
// enough inputs relative to outputs, every input at or above the dust
// threshold, and its outputs exactly the decomposition of the combined
// input amount.
func (p *ParameterSet) IsFusionTransactionAmounts(inputsAmounts, outputsAmounts []uint64, size uint64) bool {
	if size > p.fusionTxMaxSize {
		return false
	}

	if len(inputsAmounts) < p.fusionTxMinInputCount {
		return false
	}

	if len(inputsAmounts) < len(outputsAmounts)*p.fusionTxMinInOutCountRatio {
		return false
	}

	var inputAmount uint64
	for _, amount := range inputsAmounts {
		if amount < p.defaultDustThreshold {
			return false
		}
		inputAmount += amount
	}

	expected := DecomposeAmount(inputAmount, p.defaultDustThreshold)
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	sortedOutputs := append([]uint64(nil), outputsAmounts...)
	sort.Slice(sortedOutputs, func(i, j int) bool { return sortedOutputs[i] < sortedOutputs[j] })

	if len(expected) != len(sortedOutputs) {
		return false
	}
	for i := range expected {
		if expected[i] != sortedOutputs[i] {
			return false
		}
	}

	return true
}

// IsFusionTransaction reports whether tx qualifies as a fusion
// transaction, sizing it via the parameter set's BinaryEncoder. BaseInput
// (coinbase) inputs disqualify a transaction immediately — a coinbase
// transaction is never a fusion transaction.
func (p *ParameterSet) IsFusionTransaction(tx *Transaction) bool {
	inputsAmounts := make([]uint64, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if in.IsBase() {
			return false
		}
		inputsAmounts = append(inputsAmounts, in.Amount)
	}

	outputsAmounts := make([]uint64, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		outputsAmounts = append(outputsAmounts, out.Amount)
	}

	encoded, err := p.binaryEncoder.Encode(tx)
	if err != nil {
		return false
	}

	return p.IsFusionTransactionAmounts(inputsAmounts, outputsAmounts, uint64(len(encoded)))
}
