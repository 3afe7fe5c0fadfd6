package endowment

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/chronologic/eac-go/command"
	"github.com/chronologic/eac-go/command/helper"
	"github.com/chronologic/eac-go/scheduling"
)

var params endowmentParams

type endowmentParams struct {
	callGasRaw    string
	callValueRaw  string
	gasPriceRaw   string
	timeBountyRaw string

	callGas    *big.Int
	callValue  *big.Int
	gasPrice   *big.Int
	timeBounty *big.Int
}

func GetCommand() *cobra.Command {
	endowmentCmd := &cobra.Command{
		Use:     "endowment",
		Short:   "Computes the endowment to attach to a scheduled call",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(endowmentCmd)

	return endowmentCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&params.callGasRaw, "call-gas", "",
		"gas limit of the scheduled call (defaults to the configured fallback)")
	cmd.Flags().StringVar(&params.callValueRaw, "call-value", "",
		"wei transferred by the scheduled call (defaults to 0)")
	cmd.Flags().StringVar(&params.gasPriceRaw, "gas-price", "",
		"gas price of the scheduled call in wei (defaults to the configured fallback)")
	cmd.Flags().StringVar(&params.timeBountyRaw, "time-bounty", "",
		"bounty in wei paid to whoever triggers the call")
}

func runPreRun(_ *cobra.Command, _ []string) error {
	var err error

	if params.callGas, err = helper.ParseBigInt("call-gas", params.callGasRaw); err != nil {
		return err
	}

	if params.callValue, err = helper.ParseBigInt("call-value", params.callValueRaw); err != nil {
		return err
	}

	if params.gasPrice, err = helper.ParseBigInt("gas-price", params.gasPriceRaw); err != nil {
		return err
	}

	if params.timeBounty, err = helper.ParseBigInt("time-bounty", params.timeBountyRaw); err != nil {
		return err
	}

	return nil
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config := scheduling.DefaultConfig()

	outputter.SetCommandResult(&endowmentResult{
		Endowment: config.Endowment(params.callGas, params.callValue, params.gasPrice, params.timeBounty).String(),
		FutureExecutionCost: config.FutureExecutionCost(
			resolveGas(config), resolveGasPrice(config), params.timeBounty).String(),
	})
}

func resolveGas(config *scheduling.Config) *big.Int {
	if params.callGas != nil {
		return params.callGas
	}

	return config.FutureGasLimitFallback
}

func resolveGasPrice(config *scheduling.Config) *big.Int {
	if params.gasPrice != nil {
		return params.gasPrice
	}

	return config.GasPriceFallback()
}

type endowmentResult struct {
	Endowment           string `json:"endowment"`
	FutureExecutionCost string `json:"futureExecutionCost"`
}

func (r *endowmentResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[SCHEDULING COSTS]\n")
	buffer.WriteString(columnize.SimpleFormat([]string{
		fmt.Sprintf("Endowment (wei)|%s", r.Endowment),
		fmt.Sprintf("Future execution cost (wei)|%s", r.FutureExecutionCost),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
