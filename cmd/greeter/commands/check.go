package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/greeter/pkg/greet"
	"github.com/macropower/greeter/pkg/version"
)

// ErrCheckFailed indicates one or more package checks failed.
var ErrCheckFailed = errors.New("package check failed")

// NewCheckCmd returns the check command. It is a smoke test for installed
// build artifacts, verifying that packaging embedded real version metadata.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that this build embeds release version metadata",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			err := runChecks(version.Get())
			if err != nil {
				return err
			}

			cc.Println("all package checks passed")

			return nil
		},
	}
}

// runChecks runs every package check against the resolved version v, so that
// a failing run reports all failures rather than the first one.
func runChecks(v string) error {
	var merr error

	slog.Info("checking version", "version", v)

	if v == version.Fallback {
		merr = multierror.Append(merr, fmt.Errorf(
			"version is the fallback %q, no release metadata was embedded", version.Fallback,
		))
	}

	slog.Info("checking greeting")

	if got, want := greet.Greet("World"), "Hello World!"; got != want {
		merr = multierror.Append(merr, fmt.Errorf("greeting mismatch: got %q, want %q", got, want))
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrCheckFailed, merr)
	}

	return nil
}
