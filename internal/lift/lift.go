// Package lift implements lambda lifting with maximal-free-expression (MFE)
// extraction: every lambda nested inside an application is hoisted into a
// fresh top-level definition parameterized by its MFEs, leaving each
// definition's body with the shape Lam* (App-tree of non-Lam atoms).
//
// Grounded on lamukoi's transform/lambda_lift.rs, which carries only a
// `todo!()` skeleton plus a classification-table comment; this package
// implements that classification in full. Extracting maximal free
// expressions (rather than just the bound variable's own closure) is what
// distinguishes this from Johnsson-style lifting.
package lift

import "github.com/Bubbler-4/lamukoi/internal/anon"

type varState int

const (
	noVar varState = iota
	free
	bound
)

// Lift hoists every nested lambda in prog into a fresh top-level
// definition. Lifting is total: it never fails.
func Lift(prog *anon.Program) *anon.Program {
	nextID := len(prog.Defs)
	var extracted []anon.Def
	transformed := make([]anon.Def, len(prog.Defs))
	for i, d := range prog.Defs {
		if d.Body == nil {
			transformed[i] = d
			continue
		}
		transformed[i] = anon.Def{
			Name:   d.Name,
			Params: d.Params,
			Body:   liftExpr(d.Body, &nextID, &extracted),
		}
	}
	all := make([]anon.Def, 0, len(transformed)+len(extracted))
	all = append(all, transformed...)
	all = append(all, extracted...)
	return &anon.Program{Defs: all}
}

// liftExpr assumes e belongs to a single definition's body and may contain
// lambdas anywhere; it returns an equivalent lambda-free-except-for-a-
// leading-prefix expression, appending any freshly extracted definitions to
// *extracted and drawing new ids from *nextID.
func liftExpr(e anon.AnonExpr, nextID *int, extracted *[]anon.Def) anon.AnonExpr {
	switch v := e.(type) {
	case anon.App:
		fn := liftExpr(v.Fn, nextID, extracted)
		arg := liftExpr(v.Arg, nextID, extracted)
		return anon.App{Fn: fn, Arg: arg}
	case anon.Lam:
		// Recursively lift the body first, so it is already lambda-free.
		inner := liftExpr(v.Body, nextID, extracted)

		var mfes []anon.AnonExpr
		transformed, state := classify(inner, &mfes)
		if state != bound {
			// The bound variable is never referenced: extract the whole
			// (weakened) body as one final MFE so the new def still gets
			// an (unused) parameter for it.
			idx := len(mfes)
			mfes = append(mfes, weaken(transformed))
			transformed = anon.ArgId{Index: idx}
		}

		id := *nextID
		*nextID++
		*extracted = append(*extracted, anon.Def{
			Name:   anon.Unnamed(id),
			Params: len(mfes),
			Body:   anon.Lam{Body: transformed},
		})

		var result anon.AnonExpr = anon.DefId{Index: id}
		for _, mfe := range mfes {
			result = anon.App{Fn: result, Arg: mfe}
		}
		return result
	default:
		// DefId, ArgId, DeBruijn, Prim: already lambda-free leaves.
		return v
	}
}

// classify computes the VarState of e relative to the lambda currently
// being lifted (DeBruijn(0) = bound, DeBruijn(i>=1) or ArgId = free, DefId
// or Prim = no variable at all) and extracts maximal free expressions by a
// combination rule: a Free subterm meeting a Bound sibling in an App is
// pulled out into *mfes (weakened) and replaced by a placeholder ArgId
// referencing its position, since it becomes exactly that inside the new
// definition.
func classify(e anon.AnonExpr, mfes *[]anon.AnonExpr) (anon.AnonExpr, varState) {
	switch v := e.(type) {
	case anon.DefId:
		return v, noVar
	case anon.Prim:
		return v, noVar
	case anon.ArgId:
		return v, free
	case anon.DeBruijn:
		if v.Index == 0 {
			return v, bound
		}
		return v, free
	case anon.App:
		lTrans, lState := classify(v.Fn, mfes)
		rTrans, rState := classify(v.Arg, mfes)
		switch {
		case lState == free && rState == bound:
			placeholder := extract(lTrans, mfes)
			return anon.App{Fn: placeholder, Arg: rTrans}, bound
		case lState == bound && rState == free:
			placeholder := extract(rTrans, mfes)
			return anon.App{Fn: lTrans, Arg: placeholder}, bound
		default:
			return anon.App{Fn: lTrans, Arg: rTrans}, combine(lState, rState)
		}
	default:
		panic("lift: classify called on an expression that still contains a Lam")
	}
}

func combine(l, r varState) varState {
	if l == bound || r == bound {
		return bound
	}
	if l == noVar && r == noVar {
		return noVar
	}
	return free
}

// extract records sub (already weakened) as the next MFE and returns its
// placeholder reference.
func extract(sub anon.AnonExpr, mfes *[]anon.AnonExpr) anon.AnonExpr {
	idx := len(*mfes)
	*mfes = append(*mfes, weaken(sub))
	return anon.ArgId{Index: idx}
}

// weaken decrements every DeBruijn index in e by one, reflecting that
// extracting a subterm pulls it out of one enclosing lambda. Safe to call
// on any Free or NoVar subterm, since by definition those never contain
// DeBruijn(0).
func weaken(e anon.AnonExpr) anon.AnonExpr {
	switch v := e.(type) {
	case anon.DeBruijn:
		return anon.DeBruijn{Index: v.Index - 1}
	case anon.App:
		return anon.App{Fn: weaken(v.Fn), Arg: weaken(v.Arg)}
	default:
		return v
	}
}
