// Command vesperc is the thin CLI collaborator spec.md §6 describes:
// it discovers source files, drives a caller-supplied parser to build
// ast.Source values, runs the two-pass resolver, and prints results.
// It owns no resolution logic itself (grounded on the cobra command
// tree the pack's termfx-morfx CLI uses).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vesperc",
		Short: "Vesper frontend name-resolution CLI",
		Long: "vesperc drives the Vesper frontend core over a directory of " +
			"sources: the declaration pass, the two resolution passes, and " +
			"diagnostic reporting.",
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as JSON")
	root.AddCommand(newResolveCmd())
	root.AddCommand(newSymbolsCmd())
	root.AddCommand(newInspectCmd())
	return root
}
