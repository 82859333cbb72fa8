// Package examples holds runnable sample programs, each built with
// internal/ast's builder calls (there is no text-format source file to
// load, since parsing is out of scope) and registered by name for the
// manifest and the CLI to look up.
//
// Grounded on original_source/lamukoi/src/bin/main.rs and
// examples/prelude_v0/main.rs, which compose a small driver def
// (`echo = cShow READ`) on top of the prelude the same way.
package examples

import (
	"github.com/Bubbler-4/lamukoi/internal/ast"
	"github.com/Bubbler-4/lamukoi/internal/prelude"
)

// Build returns the full ast.Program (prelude plus the named example's own
// defs) for a registered example, or ok=false if name is unknown.
func Build(name string) (ast.Program, bool) {
	fn, ok := registry[name]
	if !ok {
		return ast.Program{}, false
	}
	return ast.NewProgram(prelude.Defs()...).Append(fn()...), true
}

// Names lists every registered example name, in a stable order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

var order = []string{"echo", "church-four", "bool-select"}

var registry = map[string]func() []ast.Def{
	// echo = cShow READ: copies the input bitstream to the output
	// device one bit at a time, byte by byte.
	"echo": func() []ast.Def {
		return []ast.Def{
			ast.Define("echo", ast.Apply(ast.Var("cShow"), ast.Var("READ"))),
		}
	},

	// Church arithmetic: two = |f x| f (f x); succ n f x = f (n f x);
	// main = two succ two incr 0, which applies an incrementer 4 times to
	// 0. This is the scenario a directly-nested multi-parameter lambda
	// (two's body) lifts into a chain of separate combinators rather than
	// one combined extraction; reducing it end to end is what confirms
	// that chain composes correctly under partial application.
	"church-four": func() []ast.Def {
		return []ast.Def{
			ast.Define("two", ast.Lambda(
				ast.Apply(ast.Var("f"), ast.Apply(ast.Var("f"), ast.Var("x"))),
				"f", "x")),
			ast.Define("incr", ast.Apply(ast.Var("ADD"), ast.Var("n"), ast.Int(1)), "n"),
			ast.Define("main", ast.Apply(ast.Var("two"), ast.Var("succ"), ast.Var("two"), ast.Var("incr"), ast.Int(0))),
		}
	},

	// pick = True 1 0: the Church boolean selecting its first argument.
	"bool-select": func() []ast.Def {
		return []ast.Def{
			ast.Define("pick", ast.Apply(ast.Var("True"), ast.Int(1), ast.Int(0))),
		}
	},
}
