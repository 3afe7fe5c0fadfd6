package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronologic/eac-go/command"
	"github.com/chronologic/eac-go/command/endowment"
	"github.com/chronologic/eac-go/command/scheduledata"
	"github.com/chronologic/eac-go/command/statusurl"
	"github.com/chronologic/eac-go/command/validate"
	"github.com/chronologic/eac-go/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "eac",
			Short: "eac computes costs and encodes contract calls for the Ethereum Alarm Clock",
		},
	}

	command.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		endowment.GetCommand(),
		scheduledata.GetCommand(),
		validate.GetCommand(),
		statusurl.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
