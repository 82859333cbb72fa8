// Package ast defines the named source representation: a program is an
// ordered list of top-level definitions whose bodies are built from
// identifiers, integer literals, applications, and nested lambdas.
//
// There is no text parser in this package; programs are built directly by
// host code (see builder.go) or by internal/prelude.
package ast

import (
	"fmt"
	"strings"
)

// Ident is a unicode string, compared byte-wise. Use NormalizeIdent when
// constructing one from arbitrary input so that two identifiers that are
// visually identical but differ in Unicode form never create distinct
// bindings.
type Ident = string

// Expr is the base interface for source-level expressions.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Id is a reference to a top-level definition or an enclosing lambda
// parameter, resolved by name.
type Id struct {
	Name Ident
}

// Prim is an integer literal.
type Prim struct {
	Value int64
}

// App is a function application.
type App struct {
	Fn  Expr
	Arg Expr
}

// Lam is a (possibly multi-parameter) lambda abstraction. Params is never
// empty.
type Lam struct {
	Params []Ident
	Body   Expr
}

func (Id) exprNode()   {}
func (Prim) exprNode() {}
func (App) exprNode()  {}
func (Lam) exprNode()  {}

func (e Id) String() string { return e.Name }

func (e Prim) String() string { return fmt.Sprintf("%d", e.Value) }

func (e App) String() string {
	var left, right string
	if _, ok := e.Fn.(Lam); ok {
		left = fmt.Sprintf("(%s) ", e.Fn)
	} else {
		left = fmt.Sprintf("%s ", e.Fn)
	}
	switch e.Arg.(type) {
	case App, Lam:
		right = fmt.Sprintf("(%s)", e.Arg)
	default:
		right = fmt.Sprintf("%s", e.Arg)
	}
	return left + right
}

func (e Lam) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "λ%s", e.Params[0])
	for _, p := range e.Params[1:] {
		fmt.Fprintf(&b, " %s", p)
	}
	fmt.Fprintf(&b, ". %s", e.Body)
	return b.String()
}

// Def is a top-level definition. Body == nil marks a primitive declaration
// whose arity is len(Params).
type Def struct {
	Name   Ident
	Params []Ident
	Body   Expr
}

func (d Def) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	for _, p := range d.Params {
		b.WriteString(" ")
		b.WriteString(p)
	}
	if d.Body != nil {
		fmt.Fprintf(&b, " = %s", d.Body)
	} else {
		b.WriteString(" = <builtin>")
	}
	return b.String()
}

// IsPrimitive reports whether d is a body-less primitive declaration.
func (d Def) IsPrimitive() bool { return d.Body == nil }

// Program is an ordered sequence of definitions. Order is the ground truth
// for top-level indices assigned during anonymization.
type Program struct {
	Defs []Def
}

func (p Program) String() string {
	lines := make([]string, len(p.Defs))
	for i, d := range p.Defs {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Append returns a new Program with extra defs appended, used to splice a
// prelude onto a user program without mutating either.
func (p Program) Append(defs ...Def) Program {
	out := make([]Def, 0, len(p.Defs)+len(defs))
	out = append(out, p.Defs...)
	out = append(out, defs...)
	return Program{Defs: out}
}
