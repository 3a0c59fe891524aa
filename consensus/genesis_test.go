// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "testing"

func TestGenesisBlockIsDeterministic(t *testing.T) {
	p := testParams(t)

	a, err := p.GenesisBlock()
	if err != nil {
		t.Fatalf("GenesisBlock() error = %v", err)
	}

	b, err := p.GenesisBlock()
	if err != nil {
		t.Fatalf("GenesisBlock() error = %v", err)
	}

	if a.Header != b.Header {
		t.Errorf("GenesisBlock() header not deterministic: %+v vs %+v", a.Header, b.Header)
	}
}

func TestGenesisBlockMainnetVsTestnetNonce(t *testing.T) {
	mainnet := testParams(t)
	testnet, err := NewParameterSetBuilder().Testnet().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	mb, err := mainnet.GenesisBlock()
	if err != nil {
		t.Fatalf("GenesisBlock() error = %v", err)
	}

	tb, err := testnet.GenesisBlock()
	if err != nil {
		t.Fatalf("GenesisBlock() error = %v", err)
	}

	if mb.Header.Nonce == tb.Header.Nonce {
		t.Error("expected mainnet and testnet genesis nonces to differ")
	}
}

func TestGenesisBlockFieldsMatchHardCodedDefaults(t *testing.T) {
	p := testParams(t)

	block, err := p.GenesisBlock()
	if err != nil {
		t.Fatalf("GenesisBlock() error = %v", err)
	}

	if block.Header.MajorVersion != 1 || block.Header.MinorVersion != 0 || block.Header.Timestamp != 0 {
		t.Errorf("unexpected genesis header: %+v", block.Header)
	}
	if block.Header.Nonce != 10000 {
		t.Errorf("Nonce = %d, want 10000", block.Header.Nonce)
	}
	if len(block.MinerTx.Inputs) != 1 || !block.MinerTx.Inputs[0].IsBase() {
		t.Error("expected genesis coinbase to have exactly one base input")
	}
}
