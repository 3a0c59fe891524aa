// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"strings"
	"testing"
)

func TestParameterSetBuilderRejectsInvalidEmissionSpeedFactor(t *testing.T) {
	if _, err := NewParameterSetBuilder().EmissionSpeedFactor(0).Build(); err == nil {
		t.Fatal("expected error for emissionSpeedFactor 0")
	}
	if _, err := NewParameterSetBuilder().EmissionSpeedFactor(65).Build(); err == nil {
		t.Fatal("expected error for emissionSpeedFactor 65")
	}
}

func TestParameterSetBuilderRejectsSmallDifficultyWindow(t *testing.T) {
	if _, err := NewParameterSetBuilder().DifficultyWindow(1).Build(); err == nil {
		t.Fatal("expected error for difficultyWindow 1")
	}
}

func TestParameterSetBuilderRejectsBadUpgradeVotingThreshold(t *testing.T) {
	if _, err := NewParameterSetBuilder().UpgradeVotingThreshold(0).Build(); err == nil {
		t.Fatal("expected error for upgradeVotingThreshold 0")
	}
	if _, err := NewParameterSetBuilder().UpgradeVotingThreshold(101).Build(); err == nil {
		t.Fatal("expected error for upgradeVotingThreshold 101")
	}
}

func TestParameterSetBuilderRejectsNonPositiveUpgradeWindow(t *testing.T) {
	if _, err := NewParameterSetBuilder().UpgradeWindow(0).Build(); err == nil {
		t.Fatal("expected error for upgradeWindow 0")
	}
}

func TestParameterSetBuilderStopsAtFirstError(t *testing.T) {
	_, err := NewParameterSetBuilder().
		EmissionSpeedFactor(0).
		DifficultyWindow(1).
		Build()

	if err == nil {
		t.Fatal("expected error to be reported")
	}
	if !strings.Contains(err.Error(), "emissionSpeedFactor") || strings.Contains(err.Error(), "difficultyWindow") {
		t.Errorf("Build() error = %v, want only the first (emissionSpeedFactor) error", err)
	}
}

func TestNumberOfDecimalPlacesUpdatesCoin(t *testing.T) {
	p, err := NewParameterSetBuilder().NumberOfDecimalPlaces(6).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Coin() != 1000000 {
		t.Errorf("Coin() = %d, want 1000000", p.Coin())
	}
}

func TestUpgradeHeightMainnetV3V4NeverActivate(t *testing.T) {
	p := testParams(t)

	if p.BlockMajorVersion(1<<20) != 2 {
		t.Errorf("BlockMajorVersion(high) = %d, want 2 on mainnet", p.BlockMajorVersion(1<<20))
	}
}

func TestUpgradeHeightTestnetExercisesV3V4(t *testing.T) {
	p, err := NewParameterSetBuilder().Testnet().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := p.BlockMajorVersion(10); got != 4 {
		t.Errorf("BlockMajorVersion(10) = %d, want 4 on testnet", got)
	}
	if got := p.BlockMajorVersion(0); got != 1 {
		t.Errorf("BlockMajorVersion(0) = %d, want 1", got)
	}
}

func TestDifficultyHistoryDepthMatchesLegacyMacroForV2(t *testing.T) {
	p := testParams(t)

	// v1/v2 fetch window+lag worth of ancestors; v3+ fetches window alone.
	if got, want := p.DifficultyHistoryDepth(2), p.difficultyWindow+p.difficultyLag; got != want {
		t.Errorf("DifficultyHistoryDepth(2) = %d, want %d", got, want)
	}
	if got, want := p.DifficultyHistoryDepth(4), p.DifficultyWindow(4); got != want {
		t.Errorf("DifficultyHistoryDepth(4) = %d, want %d", got, want)
	}
}
