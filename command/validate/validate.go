package validate

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	ethgo "github.com/umbracle/ethgo"

	"github.com/chronologic/eac-go/command"
	"github.com/chronologic/eac-go/command/helper"
	"github.com/chronologic/eac-go/requestfactory"
	"github.com/chronologic/eac-go/scheduling"
)

var params validateParams

type validateParams struct {
	from        string
	to          string
	callDataHex string
	isTimestamp bool

	callGasRaw         string
	callValueRaw       string
	gasPriceRaw        string
	timeBountyRaw      string
	requiredDepositRaw string
	windowSizeRaw      string
	windowStartRaw     string
	endowmentRaw       string

	requestParams scheduling.RequestParams
}

func GetCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validates scheduling parameters against the on-chain request factory",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	helper.RegisterRPCFlag(validateCmd)
	helper.RegisterNetworkFlags(validateCmd)
	setFlags(validateCmd)

	return validateCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&params.from, "from", "", "address scheduling the call")
	cmd.Flags().StringVar(&params.to, "to", "", "target address of the scheduled call")
	cmd.Flags().StringVar(&params.callDataHex, "call-data", "", "hex call data of the scheduled call")
	cmd.Flags().BoolVar(&params.isTimestamp, "timestamp", true,
		"measure the execution window in wall-clock time instead of blocks")
	cmd.Flags().StringVar(&params.callGasRaw, "call-gas", "", "gas limit of the scheduled call")
	cmd.Flags().StringVar(&params.callValueRaw, "call-value", "", "wei transferred by the scheduled call")
	cmd.Flags().StringVar(&params.gasPriceRaw, "gas-price", "", "gas price of the scheduled call in wei")
	cmd.Flags().StringVar(&params.timeBountyRaw, "time-bounty", "", "bounty in wei paid to whoever triggers the call")
	cmd.Flags().StringVar(&params.requiredDepositRaw, "required-deposit", "", "deposit a claimer must lock")
	cmd.Flags().StringVar(&params.windowSizeRaw, "window-size", "", "execution window size")
	cmd.Flags().StringVar(&params.windowStartRaw, "window-start", "", "execution window start (block or timestamp)")
	cmd.Flags().StringVar(&params.endowmentRaw, "endowment", "",
		"wei attached to the request (defaults to the computed endowment)")
}

func runPreRun(_ *cobra.Command, _ []string) error {
	p := &params.requestParams
	p.FromAddress = ethgo.HexToAddress(params.from)
	p.ToAddress = ethgo.HexToAddress(params.to)
	p.IsTimestamp = params.isTimestamp

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
		{&p.GasPrice, "gas-price", params.gasPriceRaw},
		{&p.TimeBounty, "time-bounty", params.timeBountyRaw},
		{&p.RequiredDeposit, "required-deposit", params.requiredDepositRaw},
		{&p.WindowSize, "window-size", params.windowSizeRaw},
		{&p.WindowStart, "window-start", params.windowStartRaw},
		{&p.Endowment, "endowment", params.endowmentRaw},
	} {
		value, err := helper.ParseBigInt(f.name, f.raw)
		if err != nil {
			return err
		}

		*f.dst = value
	}

	return nil
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	network, err := helper.ResolveNetwork(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	rpcURL, _ := cmd.Flags().GetString(command.RPCFlag)

	config := scheduling.DefaultConfig()
	p := &params.requestParams

	if p.Endowment == nil {
		p.Endowment = config.Endowment(p.CallGas, p.CallValue, p.GasPrice, p.TimeBounty)
	}

	client := requestfactory.NewClient(rpcURL, network, requestfactory.WithConfig(config))

	failed, err := client.ValidateRequestParams(cmd.Context(), p)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&validateResult{
		Network:      network.Name,
		Valid:        len(failed) == 0,
		FailedChecks: failed,
	})
}

type validateResult struct {
	Network      string   `json:"network"`
	Valid        bool     `json:"valid"`
	FailedChecks []string `json:"failedChecks,omitempty"`
}

func (r *validateResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[REQUEST VALIDATION]\n")

	rows := []string{
		fmt.Sprintf("Network|%s", r.Network),
		fmt.Sprintf("Valid|%t", r.Valid),
	}

	for _, check := range r.FailedChecks {
		rows = append(rows, fmt.Sprintf("Failed|%s", check))
	}

	buffer.WriteString(columnize.SimpleFormat(rows))
	buffer.WriteString("\n")

	return buffer.String()
}
