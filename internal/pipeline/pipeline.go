// Package pipeline chains the compiler stages end to end: anonymize,
// lambda-lift, lambda-eliminate, compress. The result is a lambda-free,
// deduplicated supercombinator program with stable def indexes, ready for
// primitive attachment (internal/sc.AttachPrimitives) and reduction
// (internal/reduce).
//
// Grounded on original_source/lamukoi/src/bin/main.rs, whose driver chains
// the identical stages: `into_anon()?.lambda_lift().lambda_elim()?.compress()`.
package pipeline

import (
	"github.com/Bubbler-4/lamukoi/internal/anon"
	"github.com/Bubbler-4/lamukoi/internal/ast"
	"github.com/Bubbler-4/lamukoi/internal/elim"
	"github.com/Bubbler-4/lamukoi/internal/lift"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// Compile runs prog through anonymization, lambda lifting, lambda
// elimination, and compression, in that order.
func Compile(prog ast.Program) (*sc.Program, error) {
	anonProg, err := anon.Anonymize(prog)
	if err != nil {
		return nil, err
	}
	lifted := lift.Lift(anonProg)
	scProg, err := elim.Eliminate(lifted)
	if err != nil {
		return nil, err
	}
	return sc.Compress(scProg), nil
}
