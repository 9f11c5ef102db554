package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/vesper-lang/vesper/internal/ident"
	"github.com/vesper-lang/vesper/internal/resolve"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <dir>",
		Short: "Resolve sources under dir, then browse the interned key table interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := loadSources(args[0])
			if err != nil {
				return err
			}
			t, errAcc := resolve.Resolve(sources)
			printDiagnostics(cmd, errAcc)
			return runInspectLoop(cmd.OutOrStdout(), t.Interner.Dump())
		},
	}
}

// runInspectLoop is a line-edited browser over dump: `key <n>` prints
// one identifier by key, `find <substring>` lists every matching
// identifier, `quit` exits — grounded on the teacher's internal/repl
// liner setup (history, multiline off for single-command input here).
func runInspectLoop(out interface{ Write([]byte) (int, error) }, dump []ident.Absolute) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintf(out, "%d identifiers interned; \"help\" for commands\n", len(dump))
	for {
		input, err := line.Prompt("vesperc> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err.Error() == "EOF" {
				return nil
			}
			return err
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, "commands: key <n>, find <substring>, quit")
		case "key":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: key <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 || n >= len(dump) {
				fmt.Fprintln(out, "no such key")
				continue
			}
			fmt.Fprintf(out, "%d\t%s\n", n, dump[n].String())
		case "find":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: find <substring>")
				continue
			}
			needle := strings.Join(fields[1:], " ")
			for i, a := range dump {
				if strings.Contains(a.String(), needle) {
					fmt.Fprintf(out, "%d\t%s\n", i, a.String())
				}
			}
		default:
			fmt.Fprintf(out, "unknown command %q; try \"help\"\n", fields[0])
		}
	}
}
