package scheduling

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethgo "github.com/umbracle/ethgo"
	ethabi "github.com/umbracle/ethgo/abi"

	"github.com/chronologic/eac-go/contracts/eacabi"
)

var schedulerABI = ethabi.MustNewABI(eacabi.SchedulerABI)

// Encoding errors. They exist for diagnostics only: the public contract is
// that an encoder returns a nil payload whenever any precondition fails.
var (
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrNegativeParameter  = errors.New("parameter must not be negative")
	ErrWindowSizeTooLarge = errors.New("windowSize exceeds 256 bits")
)

// ScheduleCallParams carries everything the scheduler's schedule() method
// needs. The numeric fields are required unless noted otherwise; see
// EncodeScheduleCall for the validation rules.
type ScheduleCallParams struct {
	ToAddress    ethgo.Address
	CallData     []byte
	CallGas      *big.Int
	CallValue    *big.Int
	WindowSize   *big.Int
	WindowStart  *big.Int
	CallGasPrice *big.Int
	TimeBounty   *big.Int

	// RequiredDeposit is optional; nil or negative values clamp to zero.
	RequiredDeposit *big.Int
}

// HexCallData converts the textual form of call data into raw bytes. The
// leading 0x prefix is optional.
func HexCallData(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}

	return hexutil.Decode(s)
}

// EncodeScheduleCall serializes params into the payload of
// schedule(address,bytes,uint256[8]). The uint tuple order is fixed by the
// contract: callGas, callValue, windowSize, windowStart, callGasPrice, fee,
// timeBounty, requiredDeposit.
//
// A nil payload is returned when any of callValue, callGas, callGasPrice,
// windowStart, windowSize or timeBounty is absent, or when timeBounty,
// callGasPrice or windowSize is negative, or when windowSize does not fit
// into 256 bits.
func (c *Config) EncodeScheduleCall(params *ScheduleCallParams) ([]byte, error) {
	required := []struct {
		name  string
		value *big.Int
	}{
		{"callValue", params.CallValue},
		{"callGas", params.CallGas},
		{"callGasPrice", params.CallGasPrice},
		{"windowStart", params.WindowStart},
		{"windowSize", params.WindowSize},
		{"timeBounty", params.TimeBounty},
	}

	for _, r := range required {
		if r.value == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingParameter, r.name)
		}
	}

	for _, r := range []struct {
		name  string
		value *big.Int
	}{
		{"timeBounty", params.TimeBounty},
		{"callGasPrice", params.CallGasPrice},
		{"windowSize", params.WindowSize},
	} {
		if r.value.Sign() < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeParameter, r.name)
		}
	}

	if params.WindowSize.BitLen() > 256 {
		return nil, ErrWindowSizeTooLarge
	}

	deposit := params.RequiredDeposit
	if deposit == nil || deposit.Sign() < 0 {
		deposit = new(big.Int)
	}

	uintArgs := [8]*big.Int{
		params.CallGas,
		params.CallValue,
		params.WindowSize,
		params.WindowStart,
		params.CallGasPrice,
		c.Fee,
		params.TimeBounty,
		deposit,
	}

	callData := params.CallData
	if callData == nil {
		callData = []byte{}
	}

	return schedulerABI.GetMethod("schedule").Encode([]interface{}{
		params.ToAddress,
		callData,
		uintArgs,
	})
}
