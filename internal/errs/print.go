package errs

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Print writes one error per line to w, highlighting the code in bold
// red when w is a TTY. Mirrors the teacher's use of fatih/color gated
// by mattn/go-isatty for terminal-only styling.
func Print(w io.Writer, errors []Error) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	codeColor := color.New(color.FgRed, color.Bold)
	for _, e := range errors {
		code := e.Code
		if useColor {
			code = codeColor.Sprint(code)
		}
		fmt.Fprintf(w, "%s: %s: %s\n", e.Pos, code, e.Message)
	}
}
