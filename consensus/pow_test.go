// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "testing"

func TestCheckProofOfWorkV1RejectsImpossibleDifficulty(t *testing.T) {
	p := testParams(t)

	header := BlockHeader{MajorVersion: 1}
	// an astronomically high difficulty makes the hash fail the check
	// regardless of the placeholder hash function's output.
	err := p.CheckProofOfWork(header, []byte("block blob"), ^uint64(0), Hash{}, nil, nil, Hash{})
	if err == nil {
		t.Fatal("CheckProofOfWork() expected error for impossible difficulty")
	}
}

func TestCheckProofOfWorkV2RequiresMergeMiningTag(t *testing.T) {
	p := testParams(t)

	header := BlockHeader{MajorVersion: 2}
	err := p.CheckProofOfWork(header, []byte("block blob"), 1, Hash{}, nil, nil, Hash{})
	if err == nil {
		t.Fatal("CheckProofOfWork() expected error when merge mining tag is absent")
	}
}

func TestCheckProofOfWorkV1AcceptsLowDifficulty(t *testing.T) {
	p := testParams(t)

	header := BlockHeader{MajorVersion: 1}
	if err := p.CheckProofOfWork(header, []byte("block blob"), 1, Hash{}, nil, nil, Hash{}); err != nil {
		t.Fatalf("CheckProofOfWork() unexpected error at difficulty 1: %v", err)
	}
}

func TestCheckProofOfWorkRejectsUnknownMajorVersion(t *testing.T) {
	p := testParams(t)

	header := BlockHeader{MajorVersion: 5}
	err := p.CheckProofOfWork(header, []byte("block blob"), 1, Hash{}, nil, nil, Hash{})
	if err == nil {
		t.Fatal("CheckProofOfWork() expected error for unknown major version 5")
	}
}

func TestCheckHashRejectsZeroDifficulty(t *testing.T) {
	if checkHash([32]byte{}, 0) {
		t.Error("checkHash() expected false for zero difficulty")
	}
}
