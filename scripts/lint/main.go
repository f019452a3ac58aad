// If you are AI: This tool enforces repository conventions: file headers, function comments, and a line limit.

package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// headerMarker must appear in every non-test Go source file.
const headerMarker = "If you are AI:"

// main walks the given directory and reports every convention violation.
func main() {
	maxLines := flag.Int("max-lines", 300, "Maximum lines per Go source file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-max-lines N] <directory>\n", os.Args[0])
		os.Exit(1)
	}

	failures, err := checkTree(flag.Arg(0), *maxLines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "Convention violations:\n")
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		os.Exit(1)
	}
}

// checkTree runs checkFile on every Go file under root, skipping vendor,
// testdata, and the read-only example tree.
func checkTree(root string, maxLines int) ([]string, error) {
	var failures []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "vendor", "testdata", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		failures = append(failures, checkFile(path, data, maxLines)...)
		return nil
	})

	return failures, err
}

// checkFile returns the violations found in one file.
// Test files are exempt from the header and comment checks.
func checkFile(path string, data []byte, maxLines int) []string {
	var failures []string

	if lines := strings.Count(string(data), "\n"); lines > maxLines {
		failures = append(failures, fmt.Sprintf("%s: %d lines (max %d)", path, lines, maxLines))
	}

	if strings.HasSuffix(path, "_test.go") {
		return failures
	}

	if !strings.Contains(string(data), headerMarker) {
		failures = append(failures, fmt.Sprintf("%s: missing %q header", path, headerMarker))
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, data, parser.ParseComments)
	if err != nil {
		// Skip files that don't parse (might be generated)
		return failures
	}

	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fn.Doc == nil || len(fn.Doc.List) == 0 {
			pos := fset.Position(fn.Pos())
			failures = append(failures, fmt.Sprintf("%s:%d: function %s missing comment", path, pos.Line, fn.Name.Name))
		}
	}

	return failures
}
