package main

import (
	"flag"
	"os"

	"github.com/monetaverde/monetaverde-core/consensus"
	"github.com/monetaverde/monetaverde-core/internal/clog"
	"github.com/sirupsen/logrus"
)

var log = clog.For("cmd.monetaverded")

func init() {
	// Output to stdout instead of the default stderr
	logrus.SetOutput(os.Stdout)

	// Log the debug severity or above.
	logrus.SetLevel(logrus.DebugLevel)
}

func main() {
	testnet := flag.Bool("testnet", false, "build the testnet parameter set instead of mainnet")
	flag.Parse()

	builder := consensus.NewParameterSetBuilder()
	if *testnet {
		builder.Testnet()
	}

	params, err := builder.Build()
	if err != nil {
		log.WithError(err).Fatal("invalid parameter set")
	}

	genesis, err := params.GenesisBlock()
	if err != nil {
		log.WithError(err).Fatal("failed to derive genesis block")
	}

	log.WithFields(logrus.Fields{
		"testnet":      params.IsTestnet(),
		"majorVersion": genesis.Header.MajorVersion,
		"nonce":        genesis.Header.Nonce,
	}).Info("derived genesis block")
}
