package main

import (
	"fmt"
	"strconv"

	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrwutxo/coinselect"
	"github.com/decred/dcrwutxo/coinselect/feeest"
	"github.com/urfave/cli"
)

var selectCommand = cli.Command{
	Name:     "select",
	Category: "Coin selection",
	Usage: "Balance a transaction with one funding input against the " +
		"given outputs, drawing extra synthetic inputs if the " +
		"fee can't otherwise be covered.",
	ArgsUsage: "input-amt output-amt...",
	Action:    actionDecorator(runSelect),
}

// extraPoolLadder is the set of synthetic utxo values select can draw
// from when the funding input alone can't cover the fee. It mimics a
// small, unremarkable wallet balance rather than anything realistic.
var extraPoolLadder = []int64{100, 250, 500, 1000, 2500}

func runSelect(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.ShowCommandHelp(ctx, "select")
	}

	inputAmt, err := strconv.ParseInt(args.Get(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid input-amt: %v", err)
	}

	outAmts := make([]int64, len(args)-1)
	for i, a := range args[1:] {
		amt, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid output-amt %q: %v", a, err)
		}
		outAmts[i] = amt
	}

	inputCoin, err := coinselect.CoinFromIntegral(inputAmt)
	if err != nil {
		return err
	}
	fundingKey := deterministicOutpoint(0)

	outputs := make([]coinselect.CoinMapEntry[int], len(outAmts))
	for i, amt := range outAmts {
		c, err := coinselect.CoinFromIntegral(amt)
		if err != nil {
			return fmt.Errorf("output %d: %v", i, err)
		}
		outputs[i] = coinselect.CoinMapEntry[int]{Key: i, Coin: c}
	}

	initial := coinselect.CoinSelection[coinselect.UtxoID, int]{
		Inputs: coinselect.NewCoinMap([]coinselect.CoinMapEntry[coinselect.UtxoID]{
			{Key: fundingKey, Coin: inputCoin},
		}),
		Outputs: coinselect.NewCoinMap(outputs),
	}

	pool := make([]coinselect.UtxoEntry[coinselect.UtxoID], len(extraPoolLadder))
	for i, amt := range extraPoolLadder {
		c, err := coinselect.CoinFromIntegral(amt)
		if err != nil {
			return err
		}
		pool[i] = coinselect.UtxoEntry[coinselect.UtxoID]{
			Key:  deterministicOutpoint(uint32(i + 1)),
			Coin: c,
		}
	}

	allP2PKH := func(int) (txscript.ScriptClass, error) {
		return txscript.PubKeyHashTy, nil
	}
	estimator := feeest.NewWeightEstimator[coinselect.UtxoID, int](
		feeest.AtomPerKByte(cfg.AtomsPerKB), allP2PKH,
	)
	opts := coinselect.FeeOptionsFor(cfg.policy(), estimator)

	rnd := coinselect.NewRand[coinselect.UtxoID](cfg.Seed)

	result, err := coinselect.AdjustForFee(opts, pool, rnd, initial)
	if err != nil {
		return err
	}

	fee, _ := coinselect.CalculateFee(result)
	fmt.Printf("inputs used: %d\n", result.Inputs.Len())
	for _, e := range result.Inputs.Entries() {
		fmt.Printf("  %s: %s\n", e.Key, e.Coin.Amount())
	}
	fmt.Printf("change outputs: %v\n", result.Change)
	fmt.Printf("fee: %s\n", fee.Amount())

	return nil
}
