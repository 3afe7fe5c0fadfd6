package scheduling

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	ethgo "github.com/umbracle/ethgo"
	ethabi "github.com/umbracle/ethgo/abi"

	"github.com/chronologic/eac-go/contracts/eacabi"
)

var requestFactoryABI = ethabi.MustNewABI(eacabi.RequestFactoryABI)

// Temporal unit codes used by the transaction request contract.
const (
	TemporalUnitBlock     int64 = 1
	TemporalUnitTimestamp int64 = 2
)

// Fixed scheduling policy per temporal unit. These are domain constants of
// the deployed contracts, not configuration.
const (
	freezePeriodSeconds       int64 = 3 * 60
	reservedWindowSizeSeconds int64 = 5 * 60
	claimWindowSizeSeconds    int64 = 60 * 60

	freezePeriodBlocks       int64 = 10
	reservedWindowSizeBlocks int64 = 16
	claimWindowSizeBlocks    int64 = 255
)

// feeRecipientPlaceholder stands in for the fee recipient until one is wired
// through the request parameters.
// TODO: take the fee recipient from RequestParams once the DApp sends one.
var feeRecipientPlaceholder = ethgo.Address{}

// RequestParams is the full parameter set of
// validateRequestParams(address[3],uint256[12],bytes,uint256).
type RequestParams struct {
	FromAddress ethgo.Address
	ToAddress   ethgo.Address
	CallData    []byte

	CallGas         *big.Int
	CallValue       *big.Int
	GasPrice        *big.Int
	TimeBounty      *big.Int
	RequiredDeposit *big.Int

	// WindowSize defaults to zero when nil.
	WindowSize  *big.Int
	WindowStart *big.Int

	// IsTimestamp selects timestamp scheduling over block scheduling and
	// with it the freeze/reserved/claim window policy.
	IsTimestamp bool

	Endowment *big.Int
}

type temporalPolicy struct {
	unit               *big.Int
	freezePeriod       *big.Int
	reservedWindowSize *big.Int
	claimWindowSize    *big.Int
}

func policyFor(isTimestamp bool) temporalPolicy {
	if isTimestamp {
		return temporalPolicy{
			unit:               big.NewInt(TemporalUnitTimestamp),
			freezePeriod:       big.NewInt(freezePeriodSeconds),
			reservedWindowSize: big.NewInt(reservedWindowSizeSeconds),
			claimWindowSize:    big.NewInt(claimWindowSizeSeconds),
		}
	}

	return temporalPolicy{
		unit:               big.NewInt(TemporalUnitBlock),
		freezePeriod:       big.NewInt(freezePeriodBlocks),
		reservedWindowSize: big.NewInt(reservedWindowSizeBlocks),
		claimWindowSize:    big.NewInt(claimWindowSizeBlocks),
	}
}

// nz maps nil to a zero big.Int so absent numerics encode as zero words.
func nz(b *big.Int) *big.Int {
	if b != nil {
		return b
	}

	return new(big.Int)
}

// EncodeValidateRequestParams serializes params into the payload of the
// request factory's validateRequestParams method. The uint tuple order is
// fixed by the contract: fee, timeBounty, claimWindowSize, freezePeriod,
// reservedWindowSize, temporalUnit, windowSize, windowStart, callGas,
// callValue, gasPrice, requiredDeposit.
func (c *Config) EncodeValidateRequestParams(params *RequestParams) ([]byte, error) {
	policy := policyFor(params.IsTimestamp)

	addressArgs := [3]ethgo.Address{
		params.FromAddress,
		feeRecipientPlaceholder,
		params.ToAddress,
	}

	uintArgs := [12]*big.Int{
		c.Fee,
		nz(params.TimeBounty),
		policy.claimWindowSize,
		policy.freezePeriod,
		policy.reservedWindowSize,
		policy.unit,
		nz(params.WindowSize),
		nz(params.WindowStart),
		nz(params.CallGas),
		nz(params.CallValue),
		nz(params.GasPrice),
		nz(params.RequiredDeposit),
	}

	callData := params.CallData
	if callData == nil {
		callData = []byte{}
	}

	return requestFactoryABI.GetMethod("validateRequestParams").Encode([]interface{}{
		addressArgs,
		uintArgs,
		callData,
		nz(params.Endowment),
	})
}

// RequestValidityFlagCount is the number of validity checks the request
// factory reports.
const RequestValidityFlagCount = 6

// requestValidityErrors maps flag positions to error names. Position is
// semantically load-bearing; flag i false means error i.
var requestValidityErrors = [RequestValidityFlagCount]string{
	"InsufficientEndowment",
	"ReservedWindowBiggerThanExecutionWindow",
	"InvalidTemporalUnit",
	"ExecutionWindowTooSoon",
	"CallGasTooHigh",
	"EmptyToAddress",
}

// ParseRequestValidity maps the factory's validity flags to the names of the
// checks that failed, preserving flag order. Anything other than exactly six
// flags is a caller contract violation and fails fast.
func ParseRequestValidity(flags []bool) ([]string, error) {
	if len(flags) != RequestValidityFlagCount {
		return nil, fmt.Errorf("expected %d validity flags, got %d", RequestValidityFlagCount, len(flags))
	}

	var failed []string

	for i, ok := range flags {
		if !ok {
			failed = append(failed, requestValidityErrors[i])
		}
	}

	return failed, nil
}

// RequestValidityError folds the failed checks into a single error value,
// nil when every flag passed.
func RequestValidityError(flags []bool) error {
	failed, err := ParseRequestValidity(flags)
	if err != nil {
		return err
	}

	var result *multierror.Error

	for _, name := range failed {
		result = multierror.Append(result, fmt.Errorf("request parameter check failed: %s", name))
	}

	return result.ErrorOrNil()
}
