// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"testing"

	"github.com/monetaverde/monetaverde-core/collab"
	"github.com/stretchr/testify/require"
)

func testMinerAddress() AccountPublicAddress {
	var spend, view collab.PublicKey
	spend[0] = 0x01
	view[0] = 0x02
	return AccountPublicAddress{SpendPublicKey: spend, ViewPublicKey: view}
}

func TestConstructMinerTxSumsToReward(t *testing.T) {
	p := testParams(t)

	tx, _, err := p.ConstructMinerTx(CoinbaseParams{
		MajorVersion:     1,
		Height:           1,
		MedianSize:       20000,
		CurrentBlockSize: 10000,
		Fee:              0,
		Difficulty:       1000,
		MinerAddress:     testMinerAddress(),
		MaxOutputs:       10,
	})
	require.NoError(t, err)

	var sum uint64
	for _, out := range tx.Outputs {
		sum += out.Amount
	}

	reward, _, ok := p.GetBlockReward(1, 20000, 10000, 0, 1000)
	require.True(t, ok)
	require.Equal(t, reward, sum, "coinbase outputs must sum exactly to the block reward")
}

func TestConstructMinerTxCollapsesExcessOutputs(t *testing.T) {
	p := testParams(t)

	tx, _, err := p.ConstructMinerTx(CoinbaseParams{
		MajorVersion:     1,
		Height:           1,
		MedianSize:       20000,
		CurrentBlockSize: 10000,
		Fee:              0,
		Difficulty:       1_000_000_000,
		MinerAddress:     testMinerAddress(),
		MaxOutputs:       2,
	})
	require.NoError(t, err)
	require.LessOrEqual(t, len(tx.Outputs), 2)
}

func TestConstructMinerTxRejectsZeroMaxOutputs(t *testing.T) {
	p := testParams(t)

	_, _, err := p.ConstructMinerTx(CoinbaseParams{
		MajorVersion: 1,
		Height:       1,
		Difficulty:   1000,
		MinerAddress: testMinerAddress(),
		MaxOutputs:   0,
	})
	require.Error(t, err)
}

func TestConstructMinerTxRejectsOversizedExtraNonce(t *testing.T) {
	p := testParams(t)

	_, _, err := p.ConstructMinerTx(CoinbaseParams{
		MajorVersion:     1,
		Height:           1,
		MedianSize:       20000,
		CurrentBlockSize: 10000,
		Difficulty:       1000,
		MinerAddress:     testMinerAddress(),
		ExtraNonce:       make([]byte, 1000),
		MaxOutputs:       10,
	})
	require.Error(t, err)
}

func TestConstructMinerTxUnlockTimeIncludesUnlockWindow(t *testing.T) {
	p := testParams(t)

	const height = uint32(42)
	tx, _, err := p.ConstructMinerTx(CoinbaseParams{
		MajorVersion:     1,
		Height:           height,
		MedianSize:       20000,
		CurrentBlockSize: 10000,
		Difficulty:       1000,
		MinerAddress:     testMinerAddress(),
		MaxOutputs:       10,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(height)+uint64(p.minedMoneyUnlockWindow), tx.UnlockTime)
}
