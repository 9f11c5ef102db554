// Package srcfiles is the thin, CLI-only file-discovery layer spec.md
// §6 leaves out of the core: walking a project directory (plus its
// configured search paths and stdlib path) for source files and handing
// each one's contents to a caller-supplied parser. The core
// (internal/resolve) never imports this package — it consumes
// already-parsed *ast.Source values, exactly as spec.md's "the core
// consumes AST nodes and a list of source files" boundary describes.
// Grounded on the teacher's internal/module.Loader directory/search-path
// walk, stripped of module-graph/caching concerns the resolver's own
// ImportDefinition handling already covers.
package srcfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vesper-lang/vesper/internal/ast"
)

// Ext is the source file extension this package discovers.
const Ext = ".ves"

// Options controls where Discover/Load search and how they match file
// extensions. Roots is searched in order — project root first, then
// internal/config's SearchPaths, then its ResolvedStdlibPath last,
// mirroring the teacher's own resolvePath precedence (current file,
// then search paths, then stdlib). Every listed root is expected to
// exist; a caller that wants to treat some of them (e.g. a
// not-yet-created stdlib path) as optional should filter them out of
// Roots itself before calling, the way loadSources does in
// cmd/vesperc.
type Options struct {
	Roots         []string
	CaseSensitive bool
}

// Discover walks every root in opts.Roots, collecting every *.ves file
// path in deterministic (lexicographic) order, de-duplicating files
// reachable from more than one root. Directories named "_" or starting
// with "." are skipped, matching the teacher's own convention of
// ignoring hidden/scratch directories during a module search. Matching
// honors opts.CaseSensitive, mirroring internal/config's
// IsCaseSensitive (derived from the host filesystem unless the project
// overrides it).
func Discover(opts Options) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, root := range opts.Roots {
		if root == "" {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				base := d.Name()
				if base == "_" || (base != "." && strings.HasPrefix(base, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !matchesExt(path, opts.CaseSensitive) {
				return nil
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if !seen[abs] {
				seen[abs] = true
				out = append(out, abs)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discovering source files under %s: %w", root, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

func matchesExt(path string, caseSensitive bool) bool {
	if caseSensitive {
		return filepath.Ext(path) == Ext
	}
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Parser turns one source file's raw contents into a parsed
// ast.Source. The core defines no concrete grammar (spec.md §2 "the
// core consumes AST nodes"), so callers (CLI, tests) supply their own.
type Parser func(path string, contents []byte) (*ast.Source, error)

// Load discovers every source file under opts.Roots and parses each one
// with parse, stopping at the first parse error. The returned slice
// preserves Discover's deterministic file order, which in turn becomes
// the declaration-then-resolution pass order Resolve iterates over
// (spec.md §4 "ordered list of per-source-file definition lists").
func Load(opts Options, parse Parser) ([]*ast.Source, error) {
	paths, err := Discover(opts)
	if err != nil {
		return nil, err
	}
	out := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		src, err := parse(path, data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		out = append(out, src)
	}
	return out, nil
}
