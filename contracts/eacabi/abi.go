package eacabi

// Function ABIs for the EAC contracts (central, single source of truth).

// SchedulerABI covers the schedule() entrypoint shared by the block and
// timestamp schedulers. The uint256[8] tuple order is part of the on-chain
// interface: callGas, callValue, windowSize, windowStart, callGasPrice,
// fee, timeBounty, requiredDeposit.
const SchedulerABI = `
[{"type":"function","name":"schedule",
  "inputs":[
    {"name":"toAddress","type":"address"},
    {"name":"callData","type":"bytes"},
    {"name":"uintArgs","type":"uint256[8]"}],
  "outputs":[{"name":"newRequest","type":"address"}]}]`

// RequestFactoryABI covers validateRequestParams(). addressArgs order is
// [fromAddress, feeRecipient, toAddress]; the uint256[12] order is
// fee, timeBounty, claimWindowSize, freezePeriod, reservedWindowSize,
// temporalUnit, windowSize, windowStart, callGas, callValue, gasPrice,
// requiredDeposit.
const RequestFactoryABI = `
[{"type":"function","name":"validateRequestParams",
  "inputs":[
    {"name":"addressArgs","type":"address[3]"},
    {"name":"uintArgs","type":"uint256[12]"},
    {"name":"callData","type":"bytes"},
    {"name":"endowment","type":"uint256"}],
  "outputs":[{"name":"paramsValidity","type":"bool[6]"}]}]`
