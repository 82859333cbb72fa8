// Package prelude supplies the Church/Scott encoding defs and bitstream
// primitive declarations shared by example programs: booleans, Scott
// lists, Church naturals, Church lists of bits, and the READ/SHOW/EQ/ADD/
// SUB primitive hooks wired up in internal/builtins.
//
// Grounded on original_source/lamukoi/examples/prelude_v0/prelude_v0.rs,
// transcribed from its program! macro into internal/ast's builder calls.
package prelude

import "github.com/Bubbler-4/lamukoi/internal/ast"

// Defs returns the prelude's definitions in source order, ready to be
// appended to a user program via ast.Program.Append.
func Defs() []ast.Def {
	return []ast.Def{
		ast.Primitive("EQ", 2),
		ast.Primitive("ADD", 2),
		ast.Primitive("SUB", 2),

		ast.Define("True", ast.Var("t"), "t", "f"),
		ast.Define("False", ast.Var("f"), "t", "f"),

		// Scott list: nil/cons destructured by application.
		ast.Define("SNil", ast.Var("nil"), "nil", "cons"),
		ast.Define("SCons", ast.Apply(ast.Var("cons"), ast.Var("x"), ast.Var("xs")), "x", "xs", "nil", "cons"),

		// Church list (right fold) and Church numeral encodings.
		ast.Define("cNil", ast.Var("n"), "c", "n"),
		ast.Define("cCons",
			ast.Apply(ast.Var("c"), ast.Var("h"), ast.Apply(ast.Var("t"), ast.Var("c"), ast.Var("n"))),
			"h", "t", "c", "n"),
		ast.Define("zero", ast.Var("x"), "f", "x"),
		ast.Define("succ",
			ast.Apply(ast.Var("f"), ast.Apply(ast.Var("n"), ast.Var("f"), ast.Var("x"))),
			"n", "f", "x"),
		ast.Define("int2cNat",
			ast.Apply(ast.Var("EQ"), ast.Var("i"), ast.Int(0),
				ast.Var("zero"),
				ast.Apply(ast.Var("succ"), ast.Apply(ast.Var("int2cNat"), ast.Apply(ast.Var("SUB"), ast.Var("i"), ast.Int(1))))),
			"i"),
		ast.Define("cNat2Int",
			ast.Apply(ast.Var("x"), ast.Apply(ast.Var("ADD"), ast.Int(1)), ast.Int(0)),
			"x"),

		// Bitstream I/O: READ hands back cBit1/cBit0/cNil by name; a Church
		// list of bits is built by repeated cCons onto further READs.
		ast.Primitive("READ", 0),
		ast.Define("cBit1", ast.Apply(ast.Var("cCons"), ast.Var("True"), ast.Var("READ"))),
		ast.Define("cBit0", ast.Apply(ast.Var("cCons"), ast.Var("False"), ast.Var("READ"))),
		ast.Define("cList2sList",
			ast.Apply(ast.Var("clist"), ast.Var("SCons"), ast.Var("SNil")),
			"clist"),

		ast.Primitive("SHOW", 1),
		ast.Define("sShow",
			ast.Apply(ast.Var("stream"), ast.Var("id"),
				ast.Lambda(
					ast.Apply(ast.Var("SHOW"),
						ast.Apply(ast.Var("item"), ast.Int(1), ast.Int(0)),
						ast.Var("xs")),
					"item", "xs")),
			"stream"),
		ast.Define("cShow",
			ast.Apply(ast.Var("sShow"), ast.Apply(ast.Var("cList2sList"), ast.Var("stream"))),
			"stream"),
		ast.Define("id", ast.Var("x"), "x"),
	}
}
