// Package anon implements anonymization: replacing symbolic names with
// positional references (top-level indices, supercombinator-argument
// indices, de Bruijn indices) and collapsing multi-parameter lambdas into
// single-argument ones.
//
// Grounded on original_source/lamukoi/src/transform/anonymize.rs, with
// shadowing made fully lexical and restored on scope exit (every parameter
// binding is popped on exit, not just ones that happened to shadow an
// outer name, which would otherwise leave never-shadowed bindings stuck in
// the global table).
package anon

import (
	"fmt"

	"github.com/Bubbler-4/lamukoi/internal/ast"
	"github.com/Bubbler-4/lamukoi/internal/lamerr"
)

// Name identifies a definition: either user-provided (Named) or assigned by
// lambda lifting (Unnamed).
type Name interface {
	fmt.Stringer
	nameNode()
}

// Named is a user-provided top-level name.
type Named string

// Unnamed is a lifter-assigned index, rendered as "?u".
type Unnamed int

func (Named) nameNode()   {}
func (Unnamed) nameNode() {}

func (n Named) String() string   { return string(n) }
func (n Unnamed) String() string { return fmt.Sprintf("?%d", int(n)) }

// AnonExpr is the anonymized expression representation.
type AnonExpr interface {
	fmt.Stringer
	anonExprNode()
}

// DefId references a top-level definition by index.
type DefId struct{ Index int }

// ArgId references the enclosing supercombinator's k-th parameter.
type ArgId struct{ Index int }

// DeBruijn references the k-th enclosing open lambda (0 = innermost).
type DeBruijn struct{ Index int }

// Prim is an integer literal.
type Prim struct{ Value int64 }

// App is a function application.
type App struct{ Fn, Arg AnonExpr }

// Lam is a unary lambda.
type Lam struct{ Body AnonExpr }

func (DefId) anonExprNode()    {}
func (ArgId) anonExprNode()    {}
func (DeBruijn) anonExprNode() {}
func (Prim) anonExprNode()     {}
func (App) anonExprNode()      {}
func (Lam) anonExprNode()      {}

func (e DefId) String() string    { return fmt.Sprintf("def%d", e.Index) }
func (e ArgId) String() string    { return fmt.Sprintf("x%d", e.Index) }
func (e DeBruijn) String() string { return fmt.Sprintf("db%d", e.Index) }
func (e Prim) String() string     { return fmt.Sprintf("%d", e.Value) }
func (e App) String() string      { return fmt.Sprintf("(%s %s)", e.Fn, e.Arg) }
func (e Lam) String() string      { return fmt.Sprintf("λ. %s", e.Body) }

// Def mirrors a source Def after anonymization. Params is the arity of the
// outer supercombinator; Body may still contain nested Lams until lifting
// runs. Body == nil marks a primitive declaration.
type Def struct {
	Name   Name
	Params int
	Body   AnonExpr
}

// Program is the anonymized program: positions mirror the source Program.
type Program struct {
	Defs []Def
}

// scope tracks the lexical bindings visible while translating one
// definition's body: a stack of open-lambda parameter names (innermost
// last) plus the live name -> AnonExpr table (top-level names and
// currently-bound supercombinator parameters).
type scope struct {
	open    []string
	nameMap map[string]AnonExpr
}

// Anonymize translates a source Program into an AnonProgram, or fails with
// *lamerr.Error (TopLevelNameCollision, ParamNameCollision, or
// UndefinedIdent).
func Anonymize(prog ast.Program) (*Program, error) {
	nameMap := make(map[string]AnonExpr, len(prog.Defs))
	for i, d := range prog.Defs {
		if _, dup := nameMap[d.Name]; dup {
			return nil, lamerr.TopLevelNameCollision(d.Name)
		}
		nameMap[d.Name] = DefId{Index: i}
	}

	defs := make([]Def, len(prog.Defs))
	for i, d := range prog.Defs {
		ad, err := anonymizeDef(d, nameMap)
		if err != nil {
			return nil, err
		}
		defs[i] = ad
	}
	return &Program{Defs: defs}, nil
}

func anonymizeDef(d ast.Def, nameMap map[string]AnonExpr) (Def, error) {
	if d.Body == nil {
		return Def{Name: Named(d.Name), Params: len(d.Params), Body: nil}, nil
	}

	type saved struct {
		name    string
		hadPrev bool
		prev    AnonExpr
	}
	restores := make([]saved, 0, len(d.Params))
	for i, param := range d.Params {
		prev, had := nameMap[param]
		if had {
			if _, isArg := prev.(ArgId); isArg {
				return Def{}, lamerr.ParamNameCollision(d.Name, param)
			}
		}
		nameMap[param] = ArgId{Index: i}
		restores = append(restores, saved{name: param, hadPrev: had, prev: prev})
	}

	sc := scope{nameMap: nameMap}
	body, err := sc.translate(d.Body)

	for _, r := range restores {
		if r.hadPrev {
			nameMap[r.name] = r.prev
		} else {
			delete(nameMap, r.name)
		}
	}

	if err != nil {
		return Def{}, err
	}
	return Def{Name: Named(d.Name), Params: len(d.Params), Body: body}, nil
}

func (s *scope) translate(e ast.Expr) (AnonExpr, error) {
	switch ex := e.(type) {
	case ast.Id:
		for i := len(s.open) - 1; i >= 0; i-- {
			if s.open[i] == ex.Name {
				return DeBruijn{Index: len(s.open) - 1 - i}, nil
			}
		}
		bound, ok := s.nameMap[ex.Name]
		if !ok {
			return nil, lamerr.UndefinedIdent(ex.Name)
		}
		return bound, nil
	case ast.Prim:
		return Prim{Value: ex.Value}, nil
	case ast.App:
		fn, err := s.translate(ex.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := s.translate(ex.Arg)
		if err != nil {
			return nil, err
		}
		return App{Fn: fn, Arg: arg}, nil
	case ast.Lam:
		s.open = append(s.open, ex.Params...)
		body, err := s.translate(ex.Body)
		s.open = s.open[:len(s.open)-len(ex.Params)]
		if err != nil {
			return nil, err
		}
		result := body
		for range ex.Params {
			result = Lam{Body: result}
		}
		return result, nil
	default:
		return nil, fmt.Errorf("anon: unknown source expr type %T", e)
	}
}
