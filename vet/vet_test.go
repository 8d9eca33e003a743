package vet

import (
	"strings"
	"testing"
)

func init() {
	SetDebug(DbgFlagAll)
}

// -----------------------------------------------------------------------------

// A self-contained file carries full type information, so named types
// and composite literals are classified too.
const srcTyped = `package p

type gizmo struct{}

func logf(format string, args ...interface{}) {}

func demo() {
	logf("%s%s%d\n", "foo", "bar", 3)
	logf("%d%s%d", "foo", "bar", 3)
	logf("%v...", 1)
	logf("%d", 1, 2)
	logf("%s", gizmo{})
	logf("%g", 2.5)
}
`

func TestCheckSourceTyped(t *testing.T) {
	c := NewChecker(&Config{Funcs: map[string]int{"logf": 0}})
	err := c.CheckSource("typed.go", []byte(srcTyped))
	if err != nil {
		t.Fatal("CheckSource:", err)
	}
	want := []string{
		"parameter is not integral",
		"invalid format character 'v'",
		"template needs 1 argument(s), call passes 2",
		"unsupported argument type for %s",
	}
	ds := c.Diagnostics()
	if len(ds) != len(want) {
		t.Fatal("diagnostics:", ds)
	}
	for i, w := range want {
		if !strings.Contains(ds[i].Message, w) {
			t.Fatal("diagnostic", i, "- got", ds[i].Message, "want", w)
		}
		if ds[i].Func != "logf" {
			t.Fatal("diagnostic", i, "- func:", ds[i].Func)
		}
	}
}

// -----------------------------------------------------------------------------

// With imports present the checker stays on syntactic classification:
// literals and address-of arguments are checked, plain identifiers are
// skipped.
const srcSyntactic = `package p

import "fmt"

func demo() {
	fmt.Printf("%s and %d\n", "foo", 42)
	fmt.Printf("%d", "foo")
	n := 3
	fmt.Printf("%d", n)
	fmt.Printf("%f", &n)
}
`

func TestCheckSourceSyntactic(t *testing.T) {
	c := NewChecker(nil)
	err := c.CheckSource("syntactic.go", []byte(srcSyntactic))
	if err != nil {
		t.Fatal("CheckSource:", err)
	}
	ds := c.Diagnostics()
	if len(ds) != 2 {
		t.Fatal("diagnostics:", ds)
	}
	if !strings.Contains(ds[0].Message, "parameter is not integral") {
		t.Fatal("diagnostic 0:", ds[0].Message)
	}
	if !strings.Contains(ds[1].Message, "parameter is not floating point") {
		t.Fatal("diagnostic 1:", ds[1].Message)
	}
}

// -----------------------------------------------------------------------------

// Explicit safefmt normalizations carry their category in the call
// itself.
const srcConstructors = `package p

import "github.com/jdibling/safefmt"

func demo() {
	safefmt.Printf("%s%s%d\n", safefmt.Text("foo"), safefmt.Text("bar"), safefmt.Int(3))
	safefmt.Printf("%d\n", safefmt.Text("foo"))
	safefmt.Fprintf(nil, "%g\n", safefmt.Float(0.5))
}
`

func TestCheckSourceConstructors(t *testing.T) {
	c := NewChecker(nil)
	err := c.CheckSource("constructors.go", []byte(srcConstructors))
	if err != nil {
		t.Fatal("CheckSource:", err)
	}
	ds := c.Diagnostics()
	if len(ds) != 1 {
		t.Fatal("diagnostics:", ds)
	}
	if ds[0].Func != "safefmt.Printf" || !strings.Contains(ds[0].Message, "parameter is not integral") {
		t.Fatal("diagnostic 0:", ds[0])
	}
}

// -----------------------------------------------------------------------------

// A call forwarding its argument list with ... passes an argument
// count the checker cannot see; such calls are skipped entirely.
const srcEllipsis = `package p

func logf(format string, args ...interface{}) {}

func relay(parts []interface{}) {
	logf("%s %s", parts...)
	logf("%d", parts...)
}
`

func TestCheckSourceEllipsis(t *testing.T) {
	c := NewChecker(&Config{Funcs: map[string]int{"logf": 0}})
	err := c.CheckSource("ellipsis.go", []byte(srcEllipsis))
	if err != nil {
		t.Fatal("CheckSource:", err)
	}
	if ds := c.Diagnostics(); len(ds) != 0 {
		t.Fatal("diagnostics:", ds)
	}
}

// -----------------------------------------------------------------------------

// A configured printf-style function called without reaching its
// format argument is itself a finding.
const srcNoFormat = `package p

func logf(args ...interface{}) {}

func demo() {
	logf()
}
`

func TestCheckSourceNoFormat(t *testing.T) {
	c := NewChecker(&Config{Funcs: map[string]int{"logf": 0}})
	err := c.CheckSource("noformat.go", []byte(srcNoFormat))
	if err != nil {
		t.Fatal("CheckSource:", err)
	}
	ds := c.Diagnostics()
	if len(ds) != 1 {
		t.Fatal("diagnostics:", ds)
	}
	if ds[0].Func != "logf" || !strings.Contains(ds[0].Message, "no format argument") {
		t.Fatal("diagnostic 0:", ds[0])
	}
}

// -----------------------------------------------------------------------------

func TestCheckDir(t *testing.T) {
	c := NewChecker(nil)
	if err := c.CheckDir("testdata/src", false); err != nil {
		t.Fatal("CheckDir:", err)
	}
	if ds := c.Diagnostics(); len(ds) != 3 {
		t.Fatal("diagnostics:", ds)
	}
}

func TestCheckDirRecursive(t *testing.T) {
	c := NewChecker(nil)
	if err := c.CheckDir("testdata/src", true); err != nil {
		t.Fatal("CheckDir:", err)
	}
	if ds := c.Diagnostics(); len(ds) != 4 {
		t.Fatal("diagnostics:", ds)
	}
}

func TestCheckDirIgnore(t *testing.T) {
	conf := DefaultConfig()
	conf.Ignore = []string{"sloppy.go"}
	c := NewChecker(conf)
	if err := c.CheckDir("testdata/src", false); err != nil {
		t.Fatal("CheckDir:", err)
	}
	if ds := c.Diagnostics(); len(ds) != 0 {
		t.Fatal("diagnostics:", ds)
	}
}

// -----------------------------------------------------------------------------
