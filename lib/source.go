package lib

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"
)

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var sources = struct {
	sync.Mutex
	files map[string]*sourceFile
}{files: map[string]*sourceFile{}}

// loadSource parses filename once. A file that cannot be read or parsed is
// cached as nil so the lookup is not repeated for every failure.
func loadSource(filename string) *sourceFile {
	sources.Lock()
	defer sources.Unlock()

	if sf, ok := sources.files[filename]; ok {
		return sf
	}
	var sf *sourceFile
	if src, err := os.ReadFile(filename); err == nil {
		fset := token.NewFileSet()
		if file, err := parser.ParseFile(fset, filename, src, 0); err == nil {
			sf = &sourceFile{fset: fset, file: file, src: src}
		} else {
			log.Debugf("cannot parse %s: %s", filename, err)
		}
	} else {
		log.Debugf("cannot read %s: %s", filename, err)
	}
	sources.files[filename] = sf
	return sf
}

// assertedExpr returns the source text of the argument of the innermost
// Assert call that covers line in filename. With several Assert calls side
// by side on one line, the first one wins.
func assertedExpr(filename string, line int) (string, bool) {
	if filename == "" || line <= 0 {
		return "", false
	}
	sf := loadSource(filename)
	if sf == nil {
		return "", false
	}

	var found *ast.CallExpr
	ast.Inspect(sf.file, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		if sf.fset.Position(n.Pos()).Line > line || sf.fset.Position(n.End()).Line < line {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Assert" {
			return true
		}
		// An Assert nested in the argument of the current match is the one
		// that failed; a later sibling on the same line is not.
		if found == nil || (found.Pos() <= call.Pos() && call.End() <= found.End()) {
			found = call
		}
		return true
	})
	if found == nil {
		return "", false
	}

	arg := found.Args[0]
	from := sf.fset.Position(arg.Pos()).Offset
	to := sf.fset.Position(arg.End()).Offset
	text := string(sf.src[from:to])
	if strings.ContainsAny(text, "\n\t") {
		text = strings.Join(strings.Fields(text), " ")
	}
	return text, true
}
