// coinselectcli is a small demonstration client for the coinselect
// library: it has no wallet, chain backend, or RPC connection of its
// own, and exists only to exercise AdjustForFee, DepleteUTxO, and the
// bundled weight-based FeeEstimator against synthetic utxo values.
package main

import (
	"fmt"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/urfave/cli"
)

// cfg holds the policy flags parsed out of os.Args before urfave/cli
// ever sees them. Subcommands read it directly rather than reparsing
// their own copy.
var cfg *config

func main() {
	parsed, rest, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = parsed

	app := cli.NewApp()
	app.Name = "coinselectcli"
	app.Usage = "demonstrate the coinselect balancing algorithms"
	app.Version = "1.0.0"
	app.Commands = []cli.Command{
		selectCommand,
		migrateCommand,
		calcFeeCommand,
	}

	if err := app.Run(append([]string{os.Args[0]}, rest...)); err != nil {
		// Wrap with go-errors at the CLI boundary so a stack trace is
		// available if this ever needs deeper diagnosis, without
		// forcing every subcommand to build one itself.
		fmt.Fprintln(os.Stderr, goerrors.Wrap(err, 1).Error())
		os.Exit(1)
	}
}

// actionDecorator adapts a subcommand's action so a returned error
// propagates to cli.App.Run instead of being printed inline by the
// subcommand itself.
func actionDecorator(f func(*cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		return f(c)
	}
}
