package statusurl

import (
	"github.com/spf13/cobra"

	"github.com/chronologic/eac-go/chain"
	"github.com/chronologic/eac-go/command"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status-url <tx-hash>",
		Short: "Prints the DApp status page URL for a scheduling transaction",
		Args:  cobra.ExactArgs(1),
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(&statusURLResult{
		URL: chain.TxDetailsCheckURL(args[0]),
	})
}

type statusURLResult struct {
	URL string `json:"url"`
}

func (r *statusURLResult) GetOutput() string {
	return r.URL
}
