// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "testing"

func TestLog2FixKnownValues(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint64
	}{
		{1 << log2FixPrecision, 0},                   // log2(1) == 0
		{2 << log2FixPrecision, 1 << log2FixPrecision}, // log2(2) == 1
		{4 << log2FixPrecision, 2 << log2FixPrecision}, // log2(4) == 2
	}

	for _, tc := range cases {
		if got := log2Fix(tc.x); got != tc.want {
			t.Errorf("log2Fix(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestGetPenalizedAmountBelowMedianIsUnpenalized(t *testing.T) {
	if got := getPenalizedAmount(1000000, 20000, 10000); got != 1000000 {
		t.Errorf("getPenalizedAmount() = %d, want 1000000 (no penalty)", got)
	}
}

func TestGetPenalizedAmountAboveMedianShrinks(t *testing.T) {
	got := getPenalizedAmount(1000000, 20000, 30000)
	if got >= 1000000 {
		t.Errorf("getPenalizedAmount() = %d, want < 1000000", got)
	}
}

func TestGetPenalizedAmountZero(t *testing.T) {
	if got := getPenalizedAmount(0, 20000, 30000); got != 0 {
		t.Errorf("getPenalizedAmount(0, ...) = %d, want 0", got)
	}
}

func TestGetBlockRewardRejectsOversizedBlock(t *testing.T) {
	p := testParams(t)

	_, _, ok := p.GetBlockReward(1, 20000, 100000, 0, 1000)
	if ok {
		t.Fatal("GetBlockReward() expected ok=false for oversized block")
	}
}

func TestGetBlockRewardFeePenalizedFromV3(t *testing.T) {
	// CoinVersion 0 (the default) keeps the version-gated behavior: below
	// majorVersion 3 the fee is untouched by the size penalty, so v1 and
	// v3 should disagree on emissionChange for an oversize block.
	p, err := NewParameterSetBuilder().CoinVersion(0).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	const fee = 1000000
	_, changeV1, ok := p.GetBlockReward(1, 20000, 30000, fee, 1000)
	if !ok {
		t.Fatal("GetBlockReward() v1 unexpected ok=false")
	}

	_, changeV3, ok := p.GetBlockReward(3, 20000, 30000, fee, 1000)
	if !ok {
		t.Fatal("GetBlockReward() v3 unexpected ok=false")
	}

	if changeV1 == changeV3 {
		t.Error("expected emissionChange to differ between v1 and v3 fee handling")
	}
}

func TestGetBlockRewardCoinVersionOneAlwaysPenalizesFee(t *testing.T) {
	p, err := NewParameterSetBuilder().CoinVersion(1).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	const fee = 1000000
	_, changeV1, ok := p.GetBlockReward(1, 20000, 30000, fee, 1000)
	if !ok {
		t.Fatal("GetBlockReward() v1 unexpected ok=false")
	}

	_, changeV3, ok := p.GetBlockReward(3, 20000, 30000, fee, 1000)
	if !ok {
		t.Fatal("GetBlockReward() v3 unexpected ok=false")
	}

	if changeV1 != changeV3 {
		t.Errorf("expected emissionChange to match under CoinVersion 1: v1=%d v3=%d", changeV1, changeV3)
	}
}

func TestGetBlockRewardDeterministic(t *testing.T) {
	p := testParams(t)

	r1, c1, ok1 := p.GetBlockReward(1, 20000, 10000, 500, 123456)
	r2, c2, ok2 := p.GetBlockReward(1, 20000, 10000, 500, 123456)

	if !ok1 || !ok2 || r1 != r2 || c1 != c2 {
		t.Errorf("GetBlockReward() not deterministic: (%d,%d,%v) vs (%d,%d,%v)", r1, c1, ok1, r2, c2, ok2)
	}
}
