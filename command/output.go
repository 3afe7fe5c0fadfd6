package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// CommandResult is the human-readable outcome of a command.
type CommandResult interface {
	GetOutput() string
}

// OutputFormatter prints a command result either as plain text or, when the
// --json flag is set, as JSON.
type OutputFormatter struct {
	jsonOutput bool

	result CommandResult
	err    error
}

// RegisterJSONOutputFlag registers the --json flag on the root command.
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		JSONOutputFlag,
		false,
		"get command results in json format",
	)
}

// InitializeOutputter builds the formatter for the current invocation.
func InitializeOutputter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool(JSONOutputFlag)

	return &OutputFormatter{jsonOutput: jsonOutput}
}

// SetCommandResult records the result to print on WriteOutput.
func (o *OutputFormatter) SetCommandResult(result CommandResult) {
	o.result = result
}

// SetError records a command failure to print on WriteOutput.
func (o *OutputFormatter) SetError(err error) {
	o.err = err
}

// WriteOutput flushes the recorded result or error to stdout/stderr.
func (o *OutputFormatter) WriteOutput() {
	if o.err != nil {
		if o.jsonOutput {
			raw, _ := json.Marshal(map[string]string{"error": o.err.Error()})
			fmt.Fprintln(os.Stderr, string(raw))
		} else {
			fmt.Fprintln(os.Stderr, o.err.Error())
		}

		os.Exit(1)
	}

	if o.result == nil {
		return
	}

	if o.jsonOutput {
		raw, err := json.MarshalIndent(o.result, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Println(string(raw))

		return
	}

	fmt.Println(o.result.GetOutput())
}
