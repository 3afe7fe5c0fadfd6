package scheduling

import "math/big"

// The cost formulas are total functions: every optional (nil) input has a
// documented fallback and no formula can fail. Arithmetic is exact big.Int,
// additions and multiplications only.

// FutureExecutionCost returns the funds needed to execute the scheduled call
// once its window opens:
//
//	timeBounty + Fee*FeeMultiplier + (callGas+FutureExecutionGas)*callGasPrice
//
// A nil timeBounty resolves to TimeBountyMin.
func (c *Config) FutureExecutionCost(callGas, callGasPrice, timeBounty *big.Int) *big.Int {
	if timeBounty == nil {
		timeBounty = c.TimeBountyMin
	}

	totalGas := new(big.Int).Add(callGas, c.FutureExecutionGas)

	cost := new(big.Int).Mul(c.Fee, c.FeeMultiplier)
	cost.Add(cost, timeBounty)
	cost.Add(cost, totalGas.Mul(totalGas, callGasPrice))

	return cost
}

// Endowment returns the total funds that must be attached to a scheduled
// call: the transferred value plus its future execution cost. Nil callValue
// resolves to zero, nil callGas to FutureGasLimitFallback and nil
// callGasPrice to the configured gwei fallback. The timeBounty is the
// caller's to supply; passing nil falls through to the FutureExecutionCost
// minimum-bounty default.
func (c *Config) Endowment(callGas, callValue, callGasPrice, timeBounty *big.Int) *big.Int {
	if callValue == nil {
		callValue = new(big.Int)
	}

	if callGas == nil {
		callGas = c.FutureGasLimitFallback
	}

	if callGasPrice == nil {
		callGasPrice = c.GasPriceFallback()
	}

	return new(big.Int).Add(callValue, c.FutureExecutionCost(callGas, callGasPrice, timeBounty))
}

// TotalCost returns what scheduling plus eventual execution costs in total:
// the scheduling transaction at deploymentGasPrice plus the future execution
// cost of the call itself.
func (c *Config) TotalCost(callGas, deploymentGasPrice, callGasPrice, timeBounty *big.Int) *big.Int {
	deploymentCost := new(big.Int).Mul(deploymentGasPrice, c.SchedulingGasLimit)

	return deploymentCost.Add(deploymentCost, c.FutureExecutionCost(callGas, callGasPrice, timeBounty))
}
