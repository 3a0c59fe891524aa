// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"fmt"
	"math"

	"github.com/monetaverde/monetaverde-core/collab"
	"github.com/monetaverde/monetaverde-core/internal/clog"
)

// ParameterSet is the full set of network-wide consensus constants this
// package's algorithms read. It is built only through ParameterSetBuilder
// and, once built, is immutable and safe for concurrent use by every
// operation in this package.
type ParameterSet struct {
	isTestnet bool

	coinVersion          uint8
	emissionSpeedFactor  uint8
	numberOfDecimalPlaces uint8
	coin                 uint64 // 10^numberOfDecimalPlaces, cached

	minimumFee         uint64
	defaultDustThreshold uint64

	difficultyTarget uint64

	difficultyWindow   int
	difficultyWindowV2 int
	difficultyWindowV4 int
	difficultyLag      int
	difficultyLagV2    int
	difficultyCut      int

	blockGrantedFullRewardZoneV1      uint64
	blockGrantedFullRewardZoneCurrent uint64

	coinbaseBlobReservedSize uint64

	maxBlockSizeInitial           uint64
	maxBlockSizeGrowthNumerator   uint64
	maxBlockSizeGrowthDenominator uint64

	fusionTxMaxSize               uint64
	fusionTxMinInputCount         int
	fusionTxMinInOutCountRatio    int

	upgradeHeightV2 uint32
	upgradeHeightV3 uint32
	upgradeHeightV4 uint32

	upgradeVotingThreshold int
	upgradeWindow          int

	mandatoryMixinBlockVersion uint8
	minMixin                   int
	maxMixin                   int

	publicAddressBase58Prefix uint64

	blockFutureTimeLimit   uint64
	minedMoneyUnlockWindow uint32

	genesisCoinbaseTxHex string

	checkpoints map[uint32]Hash
	seedNodes   []string

	longHasher     collab.LongHasher
	keyDerivation  collab.KeyDerivation
	merkleBrancher collab.MerkleBrancher
	addressCodec   collab.AddressCodec
	binaryEncoder  collab.BinaryEncoder
}

// IsTestnet reports whether this parameter set is the testnet variant,
// which reaches the v3/v4 upgrade heights mainnet never reaches.
func (p *ParameterSet) IsTestnet() bool { return p.isTestnet }

// Coin is 10^NumberOfDecimalPlaces, the atomic-unit scale used by
// AmountCodec.
func (p *ParameterSet) Coin() uint64 { return p.coin }

// UpgradeHeight returns the activation height for the given major
// version, or math.MaxUint32 if that version never activates under this
// parameter set (the mainnet default for v3/v4).
func (p *ParameterSet) UpgradeHeight(majorVersion uint8) uint32 {
	switch majorVersion {
	case 2:
		return p.upgradeHeightV2
	case 3:
		return p.upgradeHeightV3
	case 4:
		return p.upgradeHeightV4
	case 1:
		return 0
	default:
		return math.MaxUint32
	}
}

// BlockMajorVersion returns the consensus major version active at the
// given height under this parameter set's upgrade heights.
func (p *ParameterSet) BlockMajorVersion(height uint32) uint8 {
	version := uint8(1)
	if height >= p.upgradeHeightV2 {
		version = 2
	}
	if height >= p.upgradeHeightV3 {
		version = 3
	}
	if height >= p.upgradeHeightV4 {
		version = 4
	}
	return version
}

// DifficultyWindow returns the number of preceding blocks the
// retargeting algorithm active at majorVersion looks at.
func (p *ParameterSet) DifficultyWindow(majorVersion uint8) int {
	switch {
	case majorVersion >= 4:
		return p.difficultyWindowV4
	case majorVersion == 2:
		return p.difficultyWindowV2
	default:
		return p.difficultyWindow
	}
}

// DifficultyLag returns the retarget lag active at majorVersion.
func (p *ParameterSet) DifficultyLag(majorVersion uint8) int {
	if majorVersion == 2 {
		return p.difficultyLagV2
	}
	return p.difficultyLag
}

// DifficultyHistoryDepth is the number of ancestor blocks a caller must
// fetch to run NextDifficulty at majorVersion: for v1/v2 this is the
// window plus the lag, matching the legacy DIFFICULTY_BLOCKS_COUNT macro
// exactly rather than re-deriving it from the (equal, but conceptually
// distinct) window/lag accessors above.
func (p *ParameterSet) DifficultyHistoryDepth(majorVersion uint8) int {
	if majorVersion >= 3 {
		return p.DifficultyWindow(majorVersion)
	}
	return p.difficultyWindow + p.difficultyLag
}

// BlockGrantedFullRewardZone returns the size, in bytes, below which a
// block pays no size penalty at majorVersion.
func (p *ParameterSet) BlockGrantedFullRewardZone(majorVersion uint8) uint64 {
	if majorVersion == 1 {
		return p.blockGrantedFullRewardZoneV1
	}
	return p.blockGrantedFullRewardZoneCurrent
}

// MaxBlockCumulativeSize returns the hard cumulative-size ceiling at the
// given height, growing linearly from MaxBlockSizeInitial.
func (p *ParameterSet) MaxBlockCumulativeSize(height uint32) uint64 {
	grow := p.maxBlockSizeGrowthNumerator * uint64(height) / p.maxBlockSizeGrowthDenominator
	return p.maxBlockSizeInitial + grow
}

// MixinBounds returns the allowed ring-size range at majorVersion and
// whether a mixin is mandatory. Ring-signature verification itself is
// out of scope; this only publishes the bound for a caller's mempool or
// wallet policy.
func (p *ParameterSet) MixinBounds(majorVersion uint8) (min, max int, mandatory bool) {
	return p.minMixin, p.maxMixin, majorVersion >= p.mandatoryMixinBlockVersion
}

// EstimateMaxInputs approximates how many inputs a transaction of
// txSize bytes with outputCount outputs can carry at the given mixin
// count. Pure size accounting, no cryptography: a mempool or wallet uses
// it to decide how aggressively to mix inputs before assembling a real
// transaction. Sizes mirror getApproximateMaximumInputCount's field
// widths (32-byte keys/key-images, 64-byte signatures, varint-sized
// amounts and global-index deltas approximated at their common width).
func (p *ParameterSet) EstimateMaxInputs(txSize uint64, outputCount, mixinCount int) int {
	const (
		keyImageSize            = 32
		outputKeySize           = 32
		amountSize              = 8 + 2 // uint64 + typical varint overhead
		globalIndexesVectorSize = 1
		globalIndexesInitial    = 4
		globalIndexesDelta      = 4
		signatureSize           = 64
		extraTagSize            = 1
		inputTagSize            = 1
		outputTagSize           = 1
		publicKeySize           = 32
		versionSize             = 1
		unlockTimeSize          = 8
	)

	outputsSize := outputCount * (outputTagSize + outputKeySize + amountSize)
	headerSize := versionSize + unlockTimeSize + extraTagSize + publicKeySize
	inputSize := inputTagSize + amountSize + keyImageSize + signatureSize + globalIndexesVectorSize + globalIndexesInitial +
		mixinCount*(globalIndexesDelta+signatureSize)

	if int(txSize) <= headerSize+outputsSize || inputSize <= 0 {
		return 0
	}

	return (int(txSize) - headerSize - outputsSize) / inputSize
}

// Checkpoints returns the height-indexed hard checkpoints set through
// ParameterSetBuilder.Checkpoints; the map is empty unless one was set
// (MainnetCheckpoints holds the bundled mainnet list).
func (p *ParameterSet) Checkpoints() map[uint32]Hash { return p.checkpoints }

// SeedNodes returns the bootstrap peer addresses set through
// ParameterSetBuilder.SeedNodes; it is nil unless one was set (the
// package-level SeedNodes holds the bundled list).
func (p *ParameterSet) SeedNodes() []string { return p.seedNodes }

// LongHasher returns the proof-of-work hash collaborator wired into this
// parameter set.
func (p *ParameterSet) LongHasher() collab.LongHasher { return p.longHasher }

// KeyDerivation returns the stealth-address key-derivation collaborator.
func (p *ParameterSet) KeyDerivation() collab.KeyDerivation { return p.keyDerivation }

// MerkleBrancher returns the merge-mining branch-hashing collaborator.
func (p *ParameterSet) MerkleBrancher() collab.MerkleBrancher { return p.merkleBrancher }

// AddressCodec returns the base58 address encode/decode collaborator.
func (p *ParameterSet) AddressCodec() collab.AddressCodec { return p.addressCodec }

// BinaryEncoder returns the canonical transaction-encoding collaborator
// FusionRule uses to size a transaction.
func (p *ParameterSet) BinaryEncoder() collab.BinaryEncoder { return p.binaryEncoder }

// CoinVersion is the fee-penalty policy switch set by
// ParameterSetBuilder.CoinVersion.
func (p *ParameterSet) CoinVersion() uint8 { return p.coinVersion }

// MinimumFee is the smallest fee a transaction may carry.
func (p *ParameterSet) MinimumFee() uint64 { return p.minimumFee }

// DefaultDustThreshold is the amount below which an output is considered
// dust by AmountCodec and FusionRule.
func (p *ParameterSet) DefaultDustThreshold() uint64 { return p.defaultDustThreshold }

// UpgradeVotingThreshold is the percentage of version-voting blocks
// within UpgradeWindow required to activate a major-version bump.
func (p *ParameterSet) UpgradeVotingThreshold() int { return p.upgradeVotingThreshold }

// UpgradeWindow is the number of blocks a major-version vote is tallied
// over.
func (p *ParameterSet) UpgradeWindow() int { return p.upgradeWindow }

// ParameterSetBuilder constructs a ParameterSet field by field, rejecting
// invalid values at call time. Build returns ErrInvalidParameter, wrapped
// with detail, the first time a required invariant does not hold.
type ParameterSetBuilder struct {
	p   ParameterSet
	err error
}

// NewParameterSetBuilder returns a builder preloaded with the mainnet
// defaults from CryptoNoteConfig.h.
func NewParameterSetBuilder() *ParameterSetBuilder {
	b := &ParameterSetBuilder{}
	b.p = ParameterSet{
		coinVersion:                   0,
		emissionSpeedFactor:           23,
		numberOfDecimalPlaces:         12,
		minimumFee:                    1000000,
		defaultDustThreshold:          1000000,
		difficultyTarget:              60,
		difficultyWindow:              720,
		difficultyWindowV2:            720,
		difficultyWindowV4:            720,
		difficultyLag:                 15,
		difficultyLagV2:               15,
		difficultyCut:                 60,
		blockGrantedFullRewardZoneV1:      20000,
		blockGrantedFullRewardZoneCurrent: 20000,
		coinbaseBlobReservedSize:      600,
		maxBlockSizeInitial:           1000000,
		maxBlockSizeGrowthNumerator:   100 * 1024,
		maxBlockSizeGrowthDenominator: 365 * 24 * 60 * 60 / 60,
		fusionTxMaxSize:               20000 * 15 / 100,
		fusionTxMinInputCount:         12,
		fusionTxMinInOutCountRatio:    4,
		upgradeHeightV2:               0,
		upgradeHeightV3:               math.MaxUint32,
		upgradeHeightV4:               math.MaxUint32,
		upgradeVotingThreshold:        90,
		upgradeWindow:                 1440,
		mandatoryMixinBlockVersion:    4,
		minMixin:                      1,
		maxMixin:                      101,
		publicAddressBase58Prefix:     6699,
		blockFutureTimeLimit:          60 * 60 * 2,
		minedMoneyUnlockWindow:        60,
		genesisCoinbaseTxHex:          "013c01ff00002101274a48ea82cb5d54547e6dd7ed87af943761d82c9050f60f56da4a7e71baa2f5",
		checkpoints:                   map[uint32]Hash{},
		longHasher:                    collab.Blake2bLongHash{},
		keyDerivation:                 collab.Curve25519Derivation{},
		merkleBrancher:                collab.SipMerkleBrancher{},
		addressCodec:                  collab.Base58AddressCodec{},
		binaryEncoder:                 collab.CanonicalEncoder{},
	}
	b.p.coin = pow10(b.p.numberOfDecimalPlaces)
	return b
}

// Testnet switches the builder to the testnet defaults: a shorter
// difficulty target and low v2/v3/v4 upgrade heights, so the v3/v4 code
// paths mainnet never reaches are exercised.
func (b *ParameterSetBuilder) Testnet() *ParameterSetBuilder {
	b.p.isTestnet = true
	b.p.difficultyTarget = 15
	b.p.upgradeHeightV2 = 2
	b.p.upgradeHeightV3 = 5
	b.p.upgradeHeightV4 = 10
	return b
}

func (b *ParameterSetBuilder) fail(format string, args ...interface{}) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
	}
}

// EmissionSpeedFactor sets the reward halving-rate shift. Valid range is
// 1..64, matching CurrencyBuilder::emissionSpeedFactor.
func (b *ParameterSetBuilder) EmissionSpeedFactor(v uint8) *ParameterSetBuilder {
	if v <= 0 || v > 64 {
		b.fail("emissionSpeedFactor %d out of range [1, 64]", v)
		return b
	}
	b.p.emissionSpeedFactor = v
	return b
}

// NumberOfDecimalPlaces sets the atomic-unit scale and recomputes Coin.
func (b *ParameterSetBuilder) NumberOfDecimalPlaces(v uint8) *ParameterSetBuilder {
	b.p.numberOfDecimalPlaces = v
	b.p.coin = pow10(v)
	return b
}

// DifficultyWindow sets the v1 retarget window. Must be at least 2,
// matching CurrencyBuilder::difficultyWindow.
func (b *ParameterSetBuilder) DifficultyWindow(v int) *ParameterSetBuilder {
	if v < 2 {
		b.fail("difficultyWindow %d below minimum 2", v)
		return b
	}
	b.p.difficultyWindow = v
	return b
}

// UpgradeVotingThreshold sets the percentage of voting blocks required
// to activate a version bump. Valid range is 1..100.
func (b *ParameterSetBuilder) UpgradeVotingThreshold(v int) *ParameterSetBuilder {
	if v <= 0 || v > 100 {
		b.fail("upgradeVotingThreshold %d out of range [1, 100]", v)
		return b
	}
	b.p.upgradeVotingThreshold = v
	return b
}

// UpgradeWindow sets the number of blocks a version vote is tallied
// over. Must be positive.
func (b *ParameterSetBuilder) UpgradeWindow(v int) *ParameterSetBuilder {
	if v <= 0 {
		b.fail("upgradeWindow %d must be positive", v)
		return b
	}
	b.p.upgradeWindow = v
	return b
}

// CoinVersion sets the fee-penalty policy switch. This chain's compiled-in
// CRYPTONOTE_COIN_VERSION is 0 (the default), under which the fee is only
// size-penalized once majorVersion reaches 3. Setting it to 1 makes the
// fee always size-penalized the same way the base reward is, regardless of
// major version — the behavior some CryptoNote forks compile in instead.
func (b *ParameterSetBuilder) CoinVersion(v uint8) *ParameterSetBuilder {
	b.p.coinVersion = v
	return b
}

// PublicAddressBase58Prefix overrides the base58 address network prefix.
func (b *ParameterSetBuilder) PublicAddressBase58Prefix(v uint64) *ParameterSetBuilder {
	b.p.publicAddressBase58Prefix = v
	return b
}

// Checkpoints sets the hard checkpoints (none by default).
func (b *ParameterSetBuilder) Checkpoints(cp map[uint32]Hash) *ParameterSetBuilder {
	b.p.checkpoints = cp
	return b
}

// SeedNodes sets the bootstrap peer addresses (none by default).
func (b *ParameterSetBuilder) SeedNodes(nodes []string) *ParameterSetBuilder {
	b.p.seedNodes = nodes
	return b
}

// LongHasher overrides the proof-of-work hash collaborator. A node
// wiring the real Cryptonight family calls this before Build.
func (b *ParameterSetBuilder) LongHasher(h collab.LongHasher) *ParameterSetBuilder {
	b.p.longHasher = h
	return b
}

// KeyDerivation overrides the stealth-address key-derivation
// collaborator.
func (b *ParameterSetBuilder) KeyDerivation(kd collab.KeyDerivation) *ParameterSetBuilder {
	b.p.keyDerivation = kd
	return b
}

// MerkleBrancher overrides the merge-mining branch-hashing collaborator.
func (b *ParameterSetBuilder) MerkleBrancher(mb collab.MerkleBrancher) *ParameterSetBuilder {
	b.p.merkleBrancher = mb
	return b
}

// AddressCodec overrides the base58 address codec collaborator.
func (b *ParameterSetBuilder) AddressCodec(ac collab.AddressCodec) *ParameterSetBuilder {
	b.p.addressCodec = ac
	return b
}

// BinaryEncoder overrides the canonical transaction-encoding collaborator.
func (b *ParameterSetBuilder) BinaryEncoder(enc collab.BinaryEncoder) *ParameterSetBuilder {
	b.p.binaryEncoder = enc
	return b
}

// Build validates every set field, derives the genesis block to catch a
// malformed coinbase blob at construction time rather than on first use,
// and returns the immutable ParameterSet, or the first error encountered.
func (b *ParameterSetBuilder) Build() (*ParameterSet, error) {
	if b.err != nil {
		return nil, b.err
	}

	p := b.p
	if _, err := p.GenesisBlock(); err != nil {
		clog.For("consensus.params").WithError(err).Error("genesis block derivation failed during build")
		return nil, err
	}

	return &p, nil
}

func pow10(n uint8) uint64 {
	v := uint64(1)
	for i := uint8(0); i < n; i++ {
		v *= 10
	}
	return v
}
