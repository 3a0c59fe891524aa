// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "encoding/hex"

// External interfaces this core does not implement but whose naming and
// defaults are part of the network's identity: persisted-file names,
// default ports, bootstrap peers and hard checkpoints. Storage, P2P and
// RPC are out of scope; a node wires real implementations behind these
// constants.
const (
	CoinName = "monetaverde"

	BlocksFileName       = "blocks.dat"
	BlockIndexesFileName = "blockindexes.dat"
	PoolDataFileName     = "poolstate.dat"
	P2PNetDataFileName   = "p2pstate.dat"
	MinerConfigFileName  = "miner_conf.json"

	P2PDefaultPort = 26080
	RPCDefaultPort = 26081

	// P2PLocalWhitePeerlistLimit and P2PLocalGrayPeerlistLimit bound how
	// many known-good and untried peers a node keeps on hand.
	P2PLocalWhitePeerlistLimit = 1000
	P2PLocalGrayPeerlistLimit  = 5000

	// P2PDefaultConnectionTimeout is the dial/handshake timeout, in
	// milliseconds, a P2P implementation should use against this network.
	P2PDefaultConnectionTimeout = 5000

	// P2PStatTrustedPubKey signs the peer-count statistics a node may
	// optionally publish; only a holder of the matching private key can
	// forge a stats payload other nodes will accept.
	P2PStatTrustedPubKey = "db9eabe971890012a4071a96468155c2c360f80d18e73caa97bffd3b7381eed7"
)

// SeedNodes are the bundled bootstrap peer addresses a fresh node can
// dial before it has learned any peers of its own.
var SeedNodes = []string{
	"176.9.47.243:8580",
	"66.85.133.156:26080",
	"35.227.28.16:26080",
	"144.217.84.27:26080",
	"51.38.127.186:26080",
}

type checkpointEntry struct {
	height uint32
	hash   string
}

var mainnetCheckpointData = []checkpointEntry{
	{200000, "23f18774eee12a43c80d7162fba4d5fb10290128f31890a7cd0ff6c4e2948277"},
	{400000, "a1d34d9e229c6e425f7a9d5dfa1fa35525e3f387ed664a04c6ef5cc609357057"},
	{600000, "2a9461eb7ae8a934a111b2e9f570e81efaf02c5382a9c707cadce88e768a9205"},
	{800000, "a1ed05e9671acce3cfa7dd283f0be5320b8d626fe84be4703fc8d3be95ffcc59"},
	{1000000, "d410152f30e4c21e0bc1d82ee80f757fd2223e8a1636774b8759101f4f21dd91"},
	{1500000, "23e3e5273df28de9036b7336894578873257e1b1a2d2d14ab9945b7333ce8707"},
	{2000000, "2d5892e15d7b2066d0b26aa150c4419676dbf7678d220b2d111c74c54c0fe6ad"},
	{2100000, "8246ae723a4581483d2ebd76d4d0c54d342373e94d762d910cc375f453bd1f18"},
}

// MainnetCheckpoints decodes the bundled hard checkpoints into the
// height->hash map ParameterSetBuilder.Checkpoints expects.
func MainnetCheckpoints() map[uint32]Hash {
	out := make(map[uint32]Hash, len(mainnetCheckpointData))
	for _, entry := range mainnetCheckpointData {
		raw, err := hex.DecodeString(entry.hash)
		if err != nil || len(raw) != len(Hash{}) {
			continue
		}
		var h Hash
		copy(h[:], raw)
		out[entry.height] = h
	}
	return out
}
