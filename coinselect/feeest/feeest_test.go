package feeest

import (
	"testing"

	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrwutxo/coinselect"
	"github.com/stretchr/testify/require"
)

func TestNewWeightEstimatorScalesWithInputsAndOutputs(t *testing.T) {
	allP2PKH := func(int) (txscript.ScriptClass, error) {
		return txscript.PubKeyHashTy, nil
	}

	est := NewWeightEstimator[string, string](1000, allP2PKH)

	noChange := coinselect.CoinSelection[string, string]{
		Inputs:  coinselect.NewCoinMap([]coinselect.CoinMapEntry[string]{{Key: "a", Coin: 10}}),
		Outputs: coinselect.NewCoinMap([]coinselect.CoinMapEntry[string]{{Key: "o", Coin: 5}}),
	}
	withChange := noChange.WithChange([]coinselect.Coin{1})

	feeNoChange := est(noChange)
	feeWithChange := est(withChange)

	require.Greater(t, feeWithChange, feeNoChange)
}

func TestNewWeightEstimatorSkipsUnsupportedInputs(t *testing.T) {
	unsupported := func(int) (txscript.ScriptClass, error) {
		return txscript.NonStandardTy, ErrUnsupportedScript(txscript.NonStandardTy)
	}

	est := NewWeightEstimator[string, string](1000, unsupported)

	sel := coinselect.CoinSelection[string, string]{
		Inputs: coinselect.NewCoinMap([]coinselect.CoinMapEntry[string]{{Key: "a", Coin: 10}}),
	}

	// An unsupported input contributes zero size rather than panicking;
	// the fee should equal the base overhead alone.
	require.Equal(t, AtomPerKByte(1000).FeeForSize(baseTxOverhead), est(sel))
}

func TestAtomPerKByteFeeForSize(t *testing.T) {
	rate := AtomPerKByte(2000)
	require.Equal(t, coinselect.Coin(200), rate.FeeForSize(100))
}
