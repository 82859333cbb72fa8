package ast

import "strconv"

// This file stands in for lamukoi's expr!/lambda!/program! macros: since no
// text parser is in scope, host code builds Program values directly
// through these small constructors. All identifiers passed through the
// builder are run through NormalizeIdent.

// Var builds an Id reference, normalizing the name.
func Var(name string) Expr {
	return Id{Name: NormalizeIdent(name)}
}

// Int builds an integer literal.
func Int(v int64) Expr {
	return Prim{Value: v}
}

// Apply builds a left-associative chain of applications: Apply(f, a, b, c)
// is ((f a) b) c.
func Apply(fn Expr, args ...Expr) Expr {
	e := fn
	for _, a := range args {
		e = App{Fn: e, Arg: a}
	}
	return e
}

// Lambda builds a (possibly multi-parameter) lambda over body, normalizing
// each parameter name.
func Lambda(body Expr, params ...string) Expr {
	norm := make([]Ident, len(params))
	for i, p := range params {
		norm[i] = NormalizeIdent(p)
	}
	return Lam{Params: norm, Body: body}
}

// Define builds a bodied top-level definition.
func Define(name string, body Expr, params ...string) Def {
	norm := make([]Ident, len(params))
	for i, p := range params {
		norm[i] = NormalizeIdent(p)
	}
	return Def{Name: NormalizeIdent(name), Params: norm, Body: body}
}

// Primitive builds a body-less primitive declaration of the given arity.
func Primitive(name string, arity int) Def {
	params := make([]Ident, arity)
	for i := range params {
		params[i] = NormalizeIdent(syntheticParamName(i))
	}
	return Def{Name: NormalizeIdent(name), Params: params, Body: nil}
}

func syntheticParamName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return string(letters[i])
	}
	return "p" + strconv.Itoa(i)
}

// NewProgram builds a Program from a list of Defs.
func NewProgram(defs ...Def) Program {
	return Program{Defs: defs}
}
