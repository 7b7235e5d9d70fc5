package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/greeter/pkg/greet"
)

// NewGreetCmd returns the greet command.
func NewGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting for the given name",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cc *cobra.Command, args []string) {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			cc.Println(greet.Greet(name))
		},
	}
}
