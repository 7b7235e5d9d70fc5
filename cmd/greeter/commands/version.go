package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/greeter/pkg/version"
)

// GetVersionString returns the version string reported by the CLI.
func GetVersionString() string {
	return version.Get()
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the greeter CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
