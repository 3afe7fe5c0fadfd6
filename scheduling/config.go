package scheduling

import (
	"math/big"

	"github.com/umbracle/ethgo"
)

// Scheduling methods accepted by Config.DefaultSchedulingMethod and
// chain.Network.SchedulerAddress.
const (
	MethodTime  = "time"
	MethodBlock = "block"
)

const (
	// DefaultWindowSizeTime is the default execution window for timestamp
	// scheduling, in minutes.
	DefaultWindowSizeTime uint64 = 10

	// DefaultWindowSizeBlock is the default execution window for block
	// scheduling, in blocks.
	DefaultWindowSizeBlock uint64 = 90

	// DefaultGasPriceGwei is the gas price assumed for the future execution
	// when the caller does not supply one.
	DefaultGasPriceGwei uint64 = 20
)

// Config is the constant table every cost formula and encoder reads from.
// All monetary and gas values are non-negative big integers denominated in
// wei resp. gas units. A Config is never mutated after construction; callers
// that need different numbers build their own instance.
type Config struct {
	// Fee is the flat service fee attached to every scheduled call, in wei.
	Fee *big.Int

	// FeeMultiplier scales Fee inside the future execution cost.
	FeeMultiplier *big.Int

	// FutureExecutionGas is the fixed gas overhead the transaction request
	// contract spends on top of the scheduled call's own gas.
	FutureExecutionGas *big.Int

	// FutureGasLimitFallback substitutes a missing callGas in Endowment.
	FutureGasLimitFallback *big.Int

	// FutureGasPriceFallbackGwei substitutes a missing callGasPrice in
	// Endowment, converted to wei at use site.
	FutureGasPriceFallbackGwei uint64

	// ScheduleGasLimitFallback is assumed for the scheduling transaction
	// itself when no estimate is available.
	ScheduleGasLimitFallback *big.Int

	// SchedulingGasLimit is the gas limit of the scheduling transaction
	// itself, used by TotalCost.
	SchedulingGasLimit *big.Int

	TimeBountyDefault *big.Int
	TimeBountyMin     *big.Int
	TimeBountyMax     *big.Int

	WindowSizeDefaultTime  uint64
	WindowSizeDefaultBlock uint64

	// DefaultSchedulingMethod selects between MethodTime and MethodBlock
	// when the caller expresses no preference.
	DefaultSchedulingMethod string
}

// DefaultConfig returns the production constant table. Each call builds a
// fresh value so a caller can never mutate state shared with another caller.
func DefaultConfig() *Config {
	return &Config{
		Fee:                        big.NewInt(2242000000000000), // ~2 USD at 555 USD/ETH
		FeeMultiplier:              big.NewInt(2),
		FutureExecutionGas:         big.NewInt(180000),
		FutureGasLimitFallback:     big.NewInt(21000),
		FutureGasPriceFallbackGwei: DefaultGasPriceGwei,
		ScheduleGasLimitFallback:   big.NewInt(21000),
		SchedulingGasLimit:         big.NewInt(1500000),
		TimeBountyDefault:          ethgo.Gwei(10000000), // 0.01 ETH
		TimeBountyMin:              big.NewInt(1),
		TimeBountyMax:              ethgo.Ether(900),
		WindowSizeDefaultTime:      DefaultWindowSizeTime,
		WindowSizeDefaultBlock:     DefaultWindowSizeBlock,
		DefaultSchedulingMethod:    MethodTime,
	}
}

// GasPriceFallback converts FutureGasPriceFallbackGwei to wei.
func (c *Config) GasPriceFallback() *big.Int {
	return ethgo.Gwei(c.FutureGasPriceFallbackGwei)
}
