package main

import (
	"github.com/decred/dcrwutxo/coinselect"
	flags "github.com/jessevdk/go-flags"
)

// config holds the policy knobs every subcommand draws its FeeOptions
// from. It is parsed once in main via go-flags so every subcommand sees
// the same dust threshold and fee rate without re-parsing its own flags.
type config struct {
	DustThreshold uint64 `long:"dustthreshold" description:"change value, in atoms, at or below which a coin is coalesced away" default:"546"`
	AtomsPerKB    int64  `long:"atomsperkb" description:"fee rate used by the built-in weight estimator, in atoms per kilobyte" default:"10000"`
	Seed          int64  `long:"seed" description:"seed for the deterministic extra-input draw used by the select subcommand" default:"1"`
}

// loadConfig parses the global policy flags out of args, leaving the
// subcommand name and its positional arguments untouched in rest for
// urfave/cli to parse on its own.
func loadConfig(args []string) (*config, []string, error) {
	cfg := &config{}
	parser := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

func (c *config) policy() coinselect.Policy {
	p := coinselect.DefaultPolicy()
	p.DustThreshold = coinselect.DustThreshold(c.DustThreshold)
	return p
}
