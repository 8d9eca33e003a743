package vet

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/jdibling/safefmt"
)

// -----------------------------------------------------------------------------

// classify determines the category of a call argument. known reports
// whether the category is statically evident; a known KindInvalid
// means the argument's type is outside the supported set entirely.
func classify(arg ast.Expr, info *types.Info) (safefmt.Kind, bool) {
	if call, ok := arg.(*ast.CallExpr); ok {
		if k, ok := constructorKind(call); ok {
			return k, true
		}
	}
	if info != nil {
		if tv, ok := info.Types[arg]; ok && tv.Type != nil {
			return kindOf(tv.Type), true
		}
	}
	return kindOfExpr(arg)
}

// constructorKind recognizes explicit safefmt normalizations, so a
// checked call site needs no type information for them.
func constructorKind(call *ast.CallExpr) (safefmt.Kind, bool) {
	switch calleeName(call.Fun) {
	case "safefmt.Int", "safefmt.Uint":
		return safefmt.KindIntegral, true
	case "safefmt.Float":
		return safefmt.KindFloat, true
	case "safefmt.Text":
		return safefmt.KindText, true
	case "safefmt.Ptr":
		return safefmt.KindPointer, true
	case "safefmt.Of":
		if len(call.Args) == 1 {
			return kindOfExpr(call.Args[0])
		}
	}
	return safefmt.KindInvalid, false
}

// kindOf maps a resolved type to its argument category.
func kindOf(t types.Type) safefmt.Kind {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch info := u.Info(); {
		case info&types.IsInteger != 0:
			return safefmt.KindIntegral
		case info&types.IsFloat != 0:
			return safefmt.KindFloat
		case info&types.IsString != 0:
			return safefmt.KindText
		}
		if u.Kind() == types.UnsafePointer {
			return safefmt.KindPointer
		}
	case *types.Pointer:
		return safefmt.KindPointer
	case *types.Slice:
		if e, ok := u.Elem().Underlying().(*types.Basic); ok && e.Kind() == types.Uint8 {
			return safefmt.KindText
		}
	}
	return safefmt.KindInvalid
}

// kindOfExpr is the syntactic fallback used when no type information
// is available: literals, address-of expressions and parenthesized
// forms of either. Anything else is reported as not known, never
// guessed.
func kindOfExpr(arg ast.Expr) (safefmt.Kind, bool) {
	switch e := arg.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.CHAR:
			return safefmt.KindIntegral, true
		case token.FLOAT:
			return safefmt.KindFloat, true
		case token.STRING:
			return safefmt.KindText, true
		}
	case *ast.UnaryExpr:
		if e.Op == token.AND {
			return safefmt.KindPointer, true
		}
	case *ast.ParenExpr:
		return kindOfExpr(e.X)
	}
	return safefmt.KindInvalid, false
}

func calleeName(fun ast.Expr) string {
	switch e := fun.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return x.Name + "." + e.Sel.Name
		}
	}
	return ""
}

// -----------------------------------------------------------------------------
