// Package elim implements lambda elimination: after lifting, each
// definition's body has the shape Lam^k(lambda_free_expr); elim strips the
// k outer lambdas, adds k to the definition's arity, and rewrites every
// DeBruijn(i) into ArgId(params_new - 1 - i) so DeBruijn(0) lands on the
// last-added (innermost) parameter.
//
// Grounded on original_source/lamukoi/src/transform/lambda_elim.rs (the
// complete implementation, unlike the lifter's stub).
package elim

import (
	"github.com/Bubbler-4/lamukoi/internal/anon"
	"github.com/Bubbler-4/lamukoi/internal/lamerr"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// Eliminate converts a (lifted) AnonProgram into a ScProgram, or fails with
// *lamerr.Error (UnexpectedLambda) if a lambda is found anywhere other than
// the leading prefix of some definition's body — a pipeline-contract
// violation, not a user-facing input error.
func Eliminate(prog *anon.Program) (*sc.Program, error) {
	defs := make([]sc.Def, len(prog.Defs))
	for i, d := range prog.Defs {
		sd, err := eliminateDef(d)
		if err != nil {
			return nil, err
		}
		defs[i] = sd
	}
	return &sc.Program{Defs: defs}, nil
}

func eliminateDef(d anon.Def) (sc.Def, error) {
	if d.Body == nil {
		return sc.Def{Name: d.Name, Params: d.Params, Body: nil}, nil
	}

	cur := d.Body
	lambdas := 0
	for {
		lam, ok := cur.(anon.Lam)
		if !ok {
			break
		}
		cur = lam.Body
		lambdas++
	}
	paramsNew := d.Params + lambdas

	body, err := toScExpr(cur, paramsNew)
	if err != nil {
		return sc.Def{}, lamerr.UnexpectedLambda(d.Name.String())
	}
	return sc.Def{Name: d.Name, Params: paramsNew, Body: body}, nil
}

// toScExpr converts a lambda-free-below-this-point AnonExpr into an
// ScExpr. paramsNew is the definition's final arity, used to translate
// DeBruijn indices. Returns an error if a Lam is found (a bug: lifting
// should have left lambdas only as a leading prefix).
func toScExpr(e anon.AnonExpr, paramsNew int) (sc.ScExpr, error) {
	switch v := e.(type) {
	case anon.DefId:
		return sc.DefId{Index: v.Index}, nil
	case anon.ArgId:
		return sc.ArgId{Index: v.Index}, nil
	case anon.Prim:
		return sc.Prim{Value: v.Value}, nil
	case anon.DeBruijn:
		return sc.ArgId{Index: paramsNew - 1 - v.Index}, nil
	case anon.App:
		fn, err := toScExpr(v.Fn, paramsNew)
		if err != nil {
			return nil, err
		}
		arg, err := toScExpr(v.Arg, paramsNew)
		if err != nil {
			return nil, err
		}
		return sc.App{Fn: fn, Arg: arg}, nil
	case anon.Lam:
		return nil, errUnexpectedLambda
	default:
		return nil, errUnexpectedLambda
	}
}

// errUnexpectedLambda is a private sentinel; eliminateDef replaces it with
// a properly named *lamerr.Error before returning to the caller.
var errUnexpectedLambda = lamerr.UnexpectedLambda("")
