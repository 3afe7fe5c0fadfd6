package scheduledata

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	ethgo "github.com/umbracle/ethgo"

	"github.com/chronologic/eac-go/command"
	"github.com/chronologic/eac-go/command/helper"
	"github.com/chronologic/eac-go/scheduling"
)

var params scheduleDataParams

type scheduleDataParams struct {
	to          string
	callDataHex string

	callGasRaw         string
	callValueRaw       string
	windowSizeRaw      string
	windowStartRaw     string
	gasPriceRaw        string
	timeBountyRaw      string
	requiredDepositRaw string

	encodeParams scheduling.ScheduleCallParams
}

func GetCommand() *cobra.Command {
	scheduleDataCmd := &cobra.Command{
		Use:     "schedule-data",
		Short:   "Encodes the schedule() call payload for the scheduler contract",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(scheduleDataCmd)

	return scheduleDataCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&params.to, "to", "", "target address of the scheduled call")
	cmd.Flags().StringVar(&params.callDataHex, "call-data", "", "hex call data of the scheduled call")
	cmd.Flags().StringVar(&params.callGasRaw, "call-gas", "", "gas limit of the scheduled call")
	cmd.Flags().StringVar(&params.callValueRaw, "call-value", "", "wei transferred by the scheduled call")
	cmd.Flags().StringVar(&params.windowSizeRaw, "window-size", "", "execution window size")
	cmd.Flags().StringVar(&params.windowStartRaw, "window-start", "", "execution window start (block or timestamp)")
	cmd.Flags().StringVar(&params.gasPriceRaw, "gas-price", "", "gas price of the scheduled call in wei")
	cmd.Flags().StringVar(&params.timeBountyRaw, "time-bounty", "", "bounty in wei paid to whoever triggers the call")
	cmd.Flags().StringVar(&params.requiredDepositRaw, "required-deposit", "", "deposit a claimer must lock (defaults to 0)")
}

func runPreRun(_ *cobra.Command, _ []string) error {
	parse := func(dst **big.Int, name, raw string) error {
		value, err := helper.ParseBigInt(name, raw)
		if err != nil {
			return err
		}

		*dst = value

		return nil
	}

	p := &params.encodeParams
	p.ToAddress = ethgo.HexToAddress(params.to)

	if params.callDataHex != "" {
		callData, err := scheduling.HexCallData(params.callDataHex)
		if err != nil {
			return fmt.Errorf("invalid value for --call-data: %w", err)
		}

		p.CallData = callData
	}

	for _, f := range []struct {
		dst  **big.Int
		name string
		raw  string
	}{
		{&p.CallGas, "call-gas", params.callGasRaw},
		{&p.CallValue, "call-value", params.callValueRaw},
		{&p.WindowSize, "window-size", params.windowSizeRaw},
		{&p.WindowStart, "window-start", params.windowStartRaw},
		{&p.CallGasPrice, "gas-price", params.gasPriceRaw},
		{&p.TimeBounty, "time-bounty", params.timeBountyRaw},
		{&p.RequiredDeposit, "required-deposit", params.requiredDepositRaw},
	} {
		if err := parse(f.dst, f.name, f.raw); err != nil {
			return err
		}
	}

	return nil
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	payload, err := scheduling.DefaultConfig().EncodeScheduleCall(&params.encodeParams)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&scheduleDataResult{
		Data: fmt.Sprintf("0x%x", payload),
	})
}

type scheduleDataResult struct {
	Data string `json:"data"`
}

func (r *scheduleDataResult) GetOutput() string {
	return r.Data
}
