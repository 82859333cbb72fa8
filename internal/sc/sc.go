// Package sc defines the supercombinator program representation (lambda-free
// ScExpr/ScDef/ScProgram), the compressor that folds aliases and
// deduplicates structurally identical bodies, and the primitive attacher
// that turns a ScProgram into a ScPrimProgram ready for the reducer.
//
// Grounded on original_source/lamukoi/src/structures.rs (ScExpr/ScDef/
// ScProgram/Atom/ScBody/Primop/ScPrimDef/ScPrimProgram) and
// transform/sc_compress.rs / transform/sc_attach_prim.rs.
package sc

import (
	"fmt"

	"github.com/Bubbler-4/lamukoi/internal/anon"
)

// ScExpr is a lambda-free expression: a supercombinator/primitive body after
// lambda elimination.
type ScExpr interface {
	fmt.Stringer
	scExprNode()
}

// DefId references a top-level supercombinator by index.
type DefId struct{ Index int }

// ArgId references the enclosing supercombinator's k-th parameter.
type ArgId struct{ Index int }

// Prim is an integer literal.
type Prim struct{ Value int64 }

// App is a function application.
type App struct{ Fn, Arg ScExpr }

func (DefId) scExprNode() {}
func (ArgId) scExprNode() {}
func (Prim) scExprNode()  {}
func (App) scExprNode()   {}

func (e DefId) String() string { return fmt.Sprintf("def%d", e.Index) }
func (e ArgId) String() string { return fmt.Sprintf("x%d", e.Index) }
func (e Prim) String() string  { return fmt.Sprintf("%d", e.Value) }
func (e App) String() string   { return fmt.Sprintf("(%s %s)", e.Fn, e.Arg) }

// equal reports structural equality of two ScExprs. The compressor's dedup
// grouping does not call it; it compares the string form produced by key.
func equal(a, b ScExpr) bool {
	switch av := a.(type) {
	case DefId:
		bv, ok := b.(DefId)
		return ok && av.Index == bv.Index
	case ArgId:
		bv, ok := b.(ArgId)
		return ok && av.Index == bv.Index
	case Prim:
		bv, ok := b.(Prim)
		return ok && av.Value == bv.Value
	case App:
		bv, ok := b.(App)
		return ok && equal(av.Fn, bv.Fn) && equal(av.Arg, bv.Arg)
	default:
		return false
	}
}

// key renders a ScExpr into a string usable as a map key for structural
// dedup, analogous to the Rust compressor hashing `(params, &ScExpr)`
// directly (ScExpr there derives Hash).
func key(e ScExpr) string {
	switch v := e.(type) {
	case DefId:
		return fmt.Sprintf("D%d", v.Index)
	case ArgId:
		return fmt.Sprintf("A%d", v.Index)
	case Prim:
		return fmt.Sprintf("P%d", v.Value)
	case App:
		return "(" + key(v.Fn) + " " + key(v.Arg) + ")"
	default:
		return ""
	}
}

// Def is a supercombinator definition: positions mirror the AnonDef it was
// built from. Body == nil marks a primitive declaration.
type Def struct {
	Name   anon.Name
	Params int
	Body   ScExpr
}

// Program is the supercombinator program: positions are the ground truth
// for DefId indices.
type Program struct {
	Defs []Def
}

func (p *Program) String() string {
	out := ""
	for i, d := range p.Defs {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%s", d.Name)
		for j := 0; j < d.Params; j++ {
			out += fmt.Sprintf(" x%d", j)
		}
		out += " = "
		if d.Body != nil {
			out += d.Body.String()
		} else {
			out += "<builtin>"
		}
	}
	return out
}

// DefIndexes returns a name -> def-index lookup for every Named def, used
// by callers to locate entry points.
func (p *Program) DefIndexes() map[string]int {
	out := make(map[string]int)
	for i, d := range p.Defs {
		if n, ok := d.Name.(anon.Named); ok {
			out[string(n)] = i
		}
	}
	return out
}
