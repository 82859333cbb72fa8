package sc

import (
	"fmt"

	"github.com/Bubbler-4/lamukoi/internal/anon"
	"github.com/Bubbler-4/lamukoi/internal/lamerr"
)

// Atom is the result of a primitive operation: a reference to a
// supercombinator definition (Sc, used by READ to hand back one of the
// cBit0/cBit1/cNil combinators by def index) or a bare integer (Prim).
type Atom interface {
	atomNode()
}

// AtomSc references a top-level def by index.
type AtomSc struct{ Index int }

// AtomPrim is a plain integer result.
type AtomPrim struct{ Value int64 }

func (AtomSc) atomNode()   {}
func (AtomPrim) atomNode() {}

// Primop is a host callback: given the strict integer values of a
// primitive definition's arguments, it returns a result Atom, or ok=false
// if the arguments are out of its domain (translated to lamerr's RT002 by
// the reducer).
type Primop func(args []int64) (result Atom, ok bool)

// ScBody is either a compiled expression or a primitive callback.
type ScBody interface {
	scBodyNode()
}

// BodyExpr wraps a supercombinator's expression body.
type BodyExpr struct{ Expr ScExpr }

// BodyPrim wraps a primitive definition's host callback.
type BodyPrim struct{ Op Primop }

func (BodyExpr) scBodyNode() {}
func (BodyPrim) scBodyNode() {}

// ScPrimDef is a ScDef with its body resolved: either an expression, or a
// primitive bound to a host callback.
type ScPrimDef struct {
	Name   anon.Name
	Params int
	Body   ScBody
}

// ScPrimProgram is the final compiled form handed to the reducer.
type ScPrimProgram struct {
	Defs []ScPrimDef
}

func (p *ScPrimProgram) String() string {
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
		switch b := d.Body.(type) {
		case BodyExpr:
			out += b.Expr.String()
		case BodyPrim:
			out += "<primitive>"
		}
	}
	return out
}

// DefIndexes returns a name -> def-index lookup for every Named def.
func (p *ScPrimProgram) DefIndexes() map[string]int {
	out := make(map[string]int)
	for i, d := range p.Defs {
		if n, ok := d.Name.(anon.Named); ok {
			out[string(n)] = i
		}
	}
	return out
}

// AttachPrimitives binds every body-less Def in prog to the matching entry
// of primops (keyed by Named def name), consuming each entry as it is
// used — a primop bound twice under the same name is a caller bug, not
// something this function can happen upon, since the table is drained.
// Fails with *lamerr.Error (UnnamedPrimop if a lifter-generated Unnamed def
// was never given a body, UnknownPrimop if a Named primitive def has no
// matching registered callback).
//
// Grounded on original_source/lamukoi/src/transform/sc_attach_prim.rs.
func AttachPrimitives(prog *Program, primops map[string]Primop) (*ScPrimProgram, error) {
	defs := make([]ScPrimDef, len(prog.Defs))
	for i, d := range prog.Defs {
		pd, err := attachDef(i, d, primops)
		if err != nil {
			return nil, err
		}
		defs[i] = pd
	}
	return &ScPrimProgram{Defs: defs}, nil
}

func attachDef(index int, d Def, primops map[string]Primop) (ScPrimDef, error) {
	if d.Body != nil {
		return ScPrimDef{Name: d.Name, Params: d.Params, Body: BodyExpr{Expr: d.Body}}, nil
	}
	switch n := d.Name.(type) {
	case anon.Named:
		op, ok := primops[string(n)]
		if !ok {
			return ScPrimDef{}, lamerr.UnknownPrimop(string(n))
		}
		delete(primops, string(n))
		return ScPrimDef{Name: d.Name, Params: d.Params, Body: BodyPrim{Op: op}}, nil
	default:
		return ScPrimDef{}, lamerr.UnnamedPrimop(index)
	}
}
