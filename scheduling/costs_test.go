package scheduling

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFutureExecutionCost_NilBountyDefaultsToMin(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	rapid.Check(t, func(rt *rapid.T) {
		callGas := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "callGas"))
		callGasPrice := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "callGasPrice"))

		withNil := config.FutureExecutionCost(callGas, callGasPrice, nil)
		withMin := config.FutureExecutionCost(callGas, callGasPrice, config.TimeBountyMin)

		if withNil.Cmp(withMin) != 0 {
			rt.Fatalf("nil bounty: got %s, want %s", withNil, withMin)
		}
	})
}

func TestFutureExecutionCost_Formula(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	callGas := big.NewInt(21000)
	callGasPrice := big.NewInt(20000000000)
	timeBounty := big.NewInt(7)

	// timeBounty + fee*multiplier + (callGas+futureExecutionGas)*gasPrice
	expected := new(big.Int).Mul(config.Fee, config.FeeMultiplier)
	expected.Add(expected, timeBounty)

	totalGas := new(big.Int).Add(callGas, config.FutureExecutionGas)
	expected.Add(expected, totalGas.Mul(totalGas, callGasPrice))

	require.Zero(t, expected.Cmp(config.FutureExecutionCost(callGas, callGasPrice, timeBounty)))
}

func TestEndowment_Defaults(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	timeBounty := big.NewInt(1)

	allDefaults := config.Endowment(nil, nil, nil, timeBounty)
	explicit := config.Endowment(
		config.FutureGasLimitFallback,
		new(big.Int),
		config.GasPriceFallback(),
		timeBounty,
	)

	require.Zero(t, allDefaults.Cmp(explicit))
}

func TestEndowment_Monotonic(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	rapid.Check(t, func(rt *rapid.T) {
		callGas := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "callGas"))
		callValue := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "callValue"))
		callGasPrice := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "callGasPrice"))
		timeBounty := new(big.Int).SetUint64(rapid.Uint64().Draw(rt, "timeBounty"))
		delta := new(big.Int).SetUint64(rapid.Uint64Min(1).Draw(rt, "delta"))

		base := config.Endowment(callGas, callValue, callGasPrice, timeBounty)

		bump := func(v *big.Int) *big.Int { return new(big.Int).Add(v, delta) }

		for name, got := range map[string]*big.Int{
			"callGas":      config.Endowment(bump(callGas), callValue, callGasPrice, timeBounty),
			"callValue":    config.Endowment(callGas, bump(callValue), callGasPrice, timeBounty),
			"callGasPrice": config.Endowment(callGas, callValue, bump(callGasPrice), timeBounty),
			"timeBounty":   config.Endowment(callGas, callValue, callGasPrice, bump(timeBounty)),
		} {
			if got.Cmp(base) < 0 {
				rt.Fatalf("endowment decreased when bumping %s: %s < %s", name, got, base)
			}
		}
	})
}

func TestTotalCost_MatchesHandComputedSum(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	callGas := big.NewInt(21000)
	deploymentGasPrice := big.NewInt(20000000000) // 20 gwei
	callGasPrice := big.NewInt(20000000000)
	timeBounty := big.NewInt(1)

	expected := new(big.Int).Mul(deploymentGasPrice, config.SchedulingGasLimit)
	expected.Add(expected, config.FutureExecutionCost(callGas, callGasPrice, timeBounty))

	got := config.TotalCost(callGas, deploymentGasPrice, callGasPrice, timeBounty)

	require.Zero(t, expected.Cmp(got))

	// fee=2242000000000000, multiplier=2, futureExecutionCost=180000,
	// schedulingGasLimit=1500000:
	// 20e9*1500000 + 1 + 2*2242000000000000 + 201000*20e9 = 38504000000000001
	handComputed, ok := new(big.Int).SetString("38504000000000001", 10)
	require.True(t, ok)
	assert.Zero(t, handComputed.Cmp(got))
}

func TestCostFormulas_DoNotMutateInputs(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	callGas := big.NewInt(50000)
	callGasPrice := big.NewInt(1000)
	timeBounty := big.NewInt(42)

	_ = config.FutureExecutionCost(callGas, callGasPrice, timeBounty)
	_ = config.Endowment(callGas, nil, callGasPrice, timeBounty)
	_ = config.TotalCost(callGas, big.NewInt(7), callGasPrice, timeBounty)

	assert.Equal(t, int64(50000), callGas.Int64())
	assert.Equal(t, int64(1000), callGasPrice.Int64())
	assert.Equal(t, int64(42), timeBounty.Int64())
}
