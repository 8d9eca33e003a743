// Package vet applies safefmt's directive/category checking to
// printf-style calls found in Go source, reporting violations before
// the code ever runs.
//
// A call is checked when its function is listed in the Config, its
// format argument is a constant string, and the category of a
// formatting argument is statically evident - from type information
// when the file is self-contained, from the syntactic shape of the
// argument otherwise. Anything not evident is skipped, never guessed.
package vet

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qiniu/x/errors"

	"github.com/jdibling/safefmt"
)

// -----------------------------------------------------------------------------

const (
	DbgFlagCheckFile = 1 << iota
	DbgFlagAll       = DbgFlagCheckFile
)

var (
	debugCheckFile bool
)

func SetDebug(flags int) {
	debugCheckFile = (flags & DbgFlagCheckFile) != 0
}

// -----------------------------------------------------------------------------

// Diagnostic is one finding at a checked call site.
type Diagnostic struct {
	Pos     string `json:"pos"` // file:line:col
	Func    string `json:"func"`
	Format  string `json:"format,omitempty"`
	Message string `json:"msg"`
}

// Checker scans Go source for printf-style calls and validates their
// format templates against the categories of their arguments.
type Checker struct {
	fset  *token.FileSet
	conf  *Config
	diags []Diagnostic
}

// NewChecker creates a checker. A nil conf means DefaultConfig.
func NewChecker(conf *Config) *Checker {
	if conf == nil {
		conf = DefaultConfig()
	}
	return &Checker{fset: token.NewFileSet(), conf: conf}
}

// Diagnostics returns the findings collected so far, in source order
// per file.
func (c *Checker) Diagnostics() []Diagnostic { return c.diags }

// -----------------------------------------------------------------------------

// CheckDir checks every .go file of dir, descending into
// subdirectories when recursively is set. Directories named testdata
// and names starting with '_' or '.' are skipped.
func (c *Checker) CheckDir(dir string, recursively bool) (last error) {
	if strings.HasPrefix(filepath.Base(dir), "_") {
		return
	}
	fis, err := os.ReadDir(dir)
	if err != nil {
		return errors.NewWith(err, `os.ReadDir(dir)`, -2, "os.ReadDir", dir)
	}
	for _, fi := range fis {
		name := fi.Name()
		if fi.IsDir() {
			if recursively && name != "testdata" &&
				!strings.HasPrefix(name, "_") && !strings.HasPrefix(name, ".") {
				if e := c.CheckDir(filepath.Join(dir, name), true); e != nil {
					last = e
				}
			}
			continue
		}
		if !strings.HasSuffix(name, ".go") || c.conf.ignored(name) {
			continue
		}
		if e := c.CheckFile(filepath.Join(dir, name)); e != nil {
			last = e
		}
	}
	return
}

// CheckFile checks a single .go file.
func (c *Checker) CheckFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return errors.NewWith(err, `os.ReadFile(filename)`, -2, "os.ReadFile", filename)
	}
	return c.CheckSource(filename, src)
}

// CheckSource checks src, using filename for positions.
func (c *Checker) CheckSource(filename string, src []byte) error {
	if debugCheckFile {
		log.Println("==> Checking", filename)
	}
	f, err := parser.ParseFile(c.fset, filename, src, 0)
	if err != nil {
		return err
	}
	info := c.typeInfo(f)
	ast.Inspect(f, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			c.checkCall(call, info)
		}
		return true
	})
	return nil
}

// typeInfo type-checks a self-contained file. A file with imports
// needs a program-level loader to resolve them; for those the checker
// stays on syntactic classification.
func (c *Checker) typeInfo(f *ast.File) *types.Info {
	if len(f.Imports) > 0 {
		return nil
	}
	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	conf := types.Config{Error: func(error) {}}
	conf.Check(f.Name.Name, c.fset, []*ast.File{f}, info)
	return info
}

// -----------------------------------------------------------------------------

func (c *Checker) checkCall(call *ast.CallExpr, info *types.Info) {
	name := calleeName(call.Fun)
	if name == "" {
		return
	}
	idx, ok := c.conf.Funcs[name]
	if !ok {
		return
	}
	if idx >= len(call.Args) {
		c.report(call, name, "", fmt.Sprintf("call has no format argument (index %d)", idx))
		return
	}
	if call.Ellipsis.IsValid() {
		return // argument list forwarded with ...; arity not evident
	}
	lit, ok := call.Args[idx].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return // format not constant
	}
	format, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}
	args := call.Args[idx+1:]

	ds, err := safefmt.Directives(format)
	if err != nil {
		c.report(call, name, format, err.Error())
		return
	}
	if len(ds) != len(args) {
		c.report(call, name, format,
			fmt.Sprintf("template needs %d argument(s), call passes %d", len(ds), len(args)))
		return
	}
	for i, d := range ds {
		k, known := classify(args[i], info)
		if !known {
			continue
		}
		if k == safefmt.KindInvalid {
			c.report(call, name, format,
				fmt.Sprintf("unsupported argument type for %%%c (argument %d)", d.Verb, i+1))
			continue
		}
		if k != d.Kind {
			e := &safefmt.MismatchError{
				Format: format, Pos: d.Pos, Verb: d.Verb, Arg: i, Want: d.Kind, Got: k,
			}
			c.report(call, name, format, e.Error())
		}
	}
}

func (c *Checker) report(call *ast.CallExpr, fn, format, msg string) {
	c.diags = append(c.diags, Diagnostic{
		Pos:     c.fset.Position(call.Pos()).String(),
		Func:    fn,
		Format:  format,
		Message: msg,
	})
}

// -----------------------------------------------------------------------------
