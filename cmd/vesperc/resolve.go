package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/resolve"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <dir>",
		Short: "Discover sources under dir and run the two-pass resolver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := loadSources(args[0])
			if err != nil {
				return err
			}

			_, errAcc := resolve.Resolve(sources)
			printDiagnostics(cmd, errAcc)
			if !errAcc.Ok() {
				return fmt.Errorf("resolution failed with %d error(s)", len(errAcc.Errors()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "resolved ok")
			return nil
		},
	}
}

func printDiagnostics(cmd *cobra.Command, errAcc *errs.Accumulator) {
	if !errAcc.HasErrors() {
		return
	}
	if jsonOutput {
		out, err := errs.EncodeJSON(errAcc.Errors())
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return
	}
	errs.Print(cmd.ErrOrStderr(), errAcc.Errors())
}
