package version

import (
	"github.com/spf13/cobra"

	"github.com/chronologic/eac-go/command"
	"github.com/chronologic/eac-go/versioning"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current version",
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(&versionResult{
		Version: versioning.Version,
		Commit:  versioning.Commit,
	})
}

type versionResult struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

func (r *versionResult) GetOutput() string {
	return r.Version
}
