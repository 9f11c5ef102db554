package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vesper-lang/vesper/internal/resolve"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <dir>",
		Short: "Resolve sources under dir and dump the definition tree's key table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := loadSources(args[0])
			if err != nil {
				return err
			}

			t, errAcc := resolve.Resolve(sources)
			for i, seg := range t.Interner.Dump() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, seg.String())
			}
			printDiagnostics(cmd, errAcc)
			if !errAcc.Ok() {
				return fmt.Errorf("resolution failed with %d error(s)", len(errAcc.Errors()))
			}
			return nil
		},
	}
}
