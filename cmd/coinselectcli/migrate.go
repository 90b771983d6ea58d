package main

import (
	"fmt"
	"strconv"

	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrwutxo/coinselect"
	"github.com/decred/dcrwutxo/coinselect/feeest"
	"github.com/urfave/cli"
)

var migrateCommand = cli.Command{
	Name:     "migrate",
	Category: "Coin selection",
	Usage: "Batch a set of utxo values into self-spends, each rebalanced " +
		"to exactly cover its own fee.",
	ArgsUsage: "batch-size utxo-amt...",
	Action:    actionDecorator(runMigrate),
}

func runMigrate(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.ShowCommandHelp(ctx, "migrate")
	}

	batchSize, err := strconv.Atoi(args.Get(0))
	if err != nil {
		return fmt.Errorf("invalid batch-size: %v", err)
	}

	entries := make([]coinselect.CoinMapEntry[coinselect.UtxoID], len(args)-1)
	for i, a := range args[1:] {
		amt, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid utxo-amt %q: %v", a, err)
		}
		c, err := coinselect.CoinFromIntegral(amt)
		if err != nil {
			return fmt.Errorf("utxo %d: %v", i, err)
		}
		entries[i] = coinselect.CoinMapEntry[coinselect.UtxoID]{
			Key:  deterministicOutpoint(uint32(i)),
			Coin: c,
		}
	}

	allP2PKH := func(int) (txscript.ScriptClass, error) {
		return txscript.PubKeyHashTy, nil
	}
	estimator := feeest.NewWeightEstimator[coinselect.UtxoID, struct{}](
		feeest.AtomPerKByte(cfg.AtomsPerKB), allP2PKH,
	)
	opts := coinselect.FeeOptionsFor(cfg.policy(), estimator)

	utxo := coinselect.NewCoinMap(entries)
	batches := coinselect.DepleteUTxO(opts, batchSize, utxo)

	covered := 0
	for _, sel := range batches {
		covered += sel.Inputs.Len()
	}

	fmt.Printf("%d batches produced (of %d utxos, %d reachable by batch size %d)\n",
		len(batches), utxo.Len(), covered, batchSize)

	for i, sel := range batches {
		fee, _ := coinselect.CalculateFee(sel)
		fmt.Printf("batch %d: %d inputs, change=%v, fee=%s\n",
			i, sel.Inputs.Len(), sel.Change, fee.Amount())
	}

	return nil
}
