package main

import (
	"fmt"
	"strconv"

	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrwutxo/coinselect"
	"github.com/decred/dcrwutxo/coinselect/feeest"
	"github.com/urfave/cli"
)

var calcFeeCommand = cli.Command{
	Name:      "calcfee",
	Category:  "Fees",
	Usage:     "Estimate the fee for a transaction with the given input and output counts.",
	ArgsUsage: "num-inputs num-outputs num-change",
	Action:    actionDecorator(calcFee),
}

func calcFee(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 3 {
		return cli.ShowCommandHelp(ctx, "calcfee")
	}

	numIn, err := strconv.Atoi(args.Get(0))
	if err != nil {
		return fmt.Errorf("invalid num-inputs: %v", err)
	}
	numOut, err := strconv.Atoi(args.Get(1))
	if err != nil {
		return fmt.Errorf("invalid num-outputs: %v", err)
	}
	numChange, err := strconv.Atoi(args.Get(2))
	if err != nil {
		return fmt.Errorf("invalid num-change: %v", err)
	}

	allP2PKH := func(int) (txscript.ScriptClass, error) {
		return txscript.PubKeyHashTy, nil
	}
	estimator := feeest.NewWeightEstimator[coinselect.UtxoID, int](
		feeest.AtomPerKByte(cfg.AtomsPerKB), allP2PKH,
	)

	inputs := make([]coinselect.CoinMapEntry[coinselect.UtxoID], numIn)
	for i := range inputs {
		inputs[i] = coinselect.CoinMapEntry[coinselect.UtxoID]{
			Key:  deterministicOutpoint(uint32(i)),
			Coin: 0,
		}
	}
	outputs := make([]coinselect.CoinMapEntry[int], numOut)
	for i := range outputs {
		outputs[i] = coinselect.CoinMapEntry[int]{Key: i, Coin: 0}
	}

	sel := coinselect.CoinSelection[coinselect.UtxoID, int]{
		Inputs:  coinselect.NewCoinMap(inputs),
		Outputs: coinselect.NewCoinMap(outputs),
		Change:  make([]coinselect.Coin, numChange),
	}

	fmt.Printf("estimated fee: %s\n", estimator(sel).Amount())
	return nil
}
