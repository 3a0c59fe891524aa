// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"bytes"
	"encoding/binary"

	"github.com/monetaverde/monetaverde-core/collab"
)

// Hash is a 32-byte block or transaction identifier.
type Hash [32]byte

// AccountPublicAddress is a CryptoNote stealth-address public key pair.
type AccountPublicAddress struct {
	SpendPublicKey collab.PublicKey
	ViewPublicKey  collab.PublicKey
}

// BaseInput is the sole, synthetic input of every coinbase transaction.
type BaseInput struct {
	BlockIndex uint32
}

// KeyOutput is a one-time stealth public key paired with the amount it
// carries.
type KeyOutput struct {
	Amount uint64
	Key    collab.PublicKey
}

// ExtraField is a single tagged entry of a transaction's extra field
// (transaction public key, merge-mining tag, arbitrary nonce, ...).
type ExtraField struct {
	Tag  byte
	Data []byte
}

const (
	// ExtraTagPubkey marks the transaction's one-time public key.
	ExtraTagPubkey byte = 0x01
	// ExtraTagNonce marks an arbitrary payment-id style nonce.
	ExtraTagNonce byte = 0x02
	// ExtraTagMergeMining marks a merge-mining Merkle root tag.
	ExtraTagMergeMining byte = 0x03
)

// Transaction is the subset of a CryptoNote transaction this package
// constructs or inspects: a coinbase transaction's single base input and
// its outputs, or an ordinary transaction's inputs/outputs for fusion
// classification. Ring signatures and key images are a caller concern.
type Transaction struct {
	Version    uint8
	UnlockTime uint64
	Inputs     []TransactionInput
	Outputs    []KeyOutput
	Extra      []ExtraField
}

// TransactionInput is either a BaseInput (coinbase) or a KeyInput
// carrying the amount and ring size of an ordinary spend. Only the
// amount and the fact that it is not a BaseInput matter to FusionRule.
type TransactionInput struct {
	Base   *BaseInput
	Amount uint64
	// MixinCount is the number of decoy outputs mixed with the real one.
	MixinCount int
}

// IsBase reports whether this input is the synthetic coinbase input.
func (in TransactionInput) IsBase() bool {
	return in.Base != nil
}

// Bytes implements collab.Encodable: a deterministic, field-order
// serialization of the subset of the transaction this package models.
// Not the real wire format (ring signatures and key images are out of
// scope here) — only stable enough for FusionRule's size check.
func (t *Transaction) Bytes() []byte {
	buf := new(bytes.Buffer)

	buf.WriteByte(t.Version)
	binary.Write(buf, binary.BigEndian, t.UnlockTime)

	binary.Write(buf, binary.BigEndian, uint64(len(t.Inputs)))
	for _, in := range t.Inputs {
		if in.IsBase() {
			buf.WriteByte(0)
			binary.Write(buf, binary.BigEndian, in.Base.BlockIndex)
			continue
		}
		buf.WriteByte(1)
		binary.Write(buf, binary.BigEndian, in.Amount)
		binary.Write(buf, binary.BigEndian, uint64(in.MixinCount))
	}

	binary.Write(buf, binary.BigEndian, uint64(len(t.Outputs)))
	for _, out := range t.Outputs {
		binary.Write(buf, binary.BigEndian, out.Amount)
		buf.Write(out.Key[:])
	}

	binary.Write(buf, binary.BigEndian, uint64(len(t.Extra)))
	for _, e := range t.Extra {
		buf.WriteByte(e.Tag)
		binary.Write(buf, binary.BigEndian, uint64(len(e.Data)))
		buf.Write(e.Data)
	}

	return buf.Bytes()
}

// MergeMiningTag is the extra-field payload that links an auxiliary
// chain's block hash into this chain's coinbase transaction.
type MergeMiningTag struct {
	Depth      uint32
	MerkleRoot Hash
}

// BlockHeader carries the version that selects the proof-of-work and
// retargeting algorithms, the minor version, the timestamp, the previous
// block id and the nonce. The PoW hash is not stored here; CheckProofOfWork
// computes it from the hashing blob.
type BlockHeader struct {
	MajorVersion uint8
	MinorVersion uint8
	Timestamp    uint64
	PrevID       Hash
	Nonce        uint32
}

// BlockTemplate is a not-yet-mined candidate block: a header plus its
// coinbase transaction and the ancestor timestamp/difficulty window. It
// does not carry the block's ordinary transactions.
type BlockTemplate struct {
	Header      BlockHeader
	MinerTx     Transaction
	Timestamps  []uint64 // recent ancestor timestamps, oldest first
	Difficulties []uint64 // recent ancestor cumulative difficulties, aligned with Timestamps
}
