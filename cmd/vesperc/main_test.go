package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeVesFile(dir, name, contents string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644)
}

func TestNewRootCmd_Structure(t *testing.T) {
	root := newRootCmd()
	require.Equal(t, "vesperc", root.Use)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"resolve", "symbols", "inspect"}, names)

	flag := root.PersistentFlags().Lookup("json")
	require.NotNil(t, flag)
	require.Equal(t, "false", flag.DefValue)
}

func TestNewRootCmd_HelpListsSubcommands(t *testing.T) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	out := buf.String()
	require.Contains(t, out, "resolve")
	require.Contains(t, out, "symbols")
	require.Contains(t, out, "inspect")
}

func TestResolveCmd_RequiresExactlyOneArg(t *testing.T) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"resolve"})

	err := root.Execute()
	require.Error(t, err)
}

func TestSymbolsCmd_RequiresExactlyOneArg(t *testing.T) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"symbols", "a", "b"})

	err := root.Execute()
	require.Error(t, err)
}

func TestResolveCmd_ReportsDiscoveryFailureOnMissingDir(t *testing.T) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"resolve", t.TempDir() + "/does-not-exist"})

	err := root.Execute()
	require.Error(t, err)
}

func TestNoGrammarParser_AlwaysErrors(t *testing.T) {
	_, err := noGrammarParser("foo.ves", []byte("module foo"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "no concrete grammar parser"))
}

func TestResolveCmd_ErrorsOnAnyRealSourceFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeVesFile(dir, "a.ves", "v = 1"))

	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"resolve", dir})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no concrete grammar parser")
}
