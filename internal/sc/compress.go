package sc

import "github.com/Bubbler-4/lamukoi/internal/anon"

// Compress repeats alias-folding and structural dedup to a fixed point:
// first, any zero-arity def whose body is a bare DefId(j) reference copies
// j's arity and body; then defs sharing the same (params, body) are merged,
// keeping any Named member (Named duplicates are never removed) or, if all
// members are Unnamed, the first one. Terminates when an iteration removes
// nothing.
//
// Grounded on original_source/lamukoi/src/transform/sc_compress.rs,
// including its renumbering scheme, which relies on every Named def's
// index preceding every Unnamed def's index (true after lifting, since
// extracted Unnamed defs are always appended after the originals, and
// preserved by this function's order-stable filtering).
func Compress(prog *Program) *Program {
	defs := append([]Def(nil), prog.Defs...)
	for {
		length := len(defs)

		resolveAliases(defs)

		keep, renumber := planDedup(defs)

		nextID := 0
		for i := 0; i < length; i++ {
			if keep[i] {
				renumber[i] = nextID
				nextID++
			} else {
				renumber[i] = renumber[renumber[i]]
			}
		}

		var next []Def
		for i, d := range defs {
			if !keep[i] {
				continue
			}
			if d.Body != nil {
				d.Body = renumberExpr(d.Body, renumber)
			}
			next = append(next, d)
		}

		nextUnnamedID := 0
		for i := range next {
			if _, ok := next[i].Name.(anon.Unnamed); ok {
				next[i].Name = anon.Unnamed(nextUnnamedID)
				nextUnnamedID++
			}
		}

		defs = next
		if length == len(defs) {
			break
		}
	}
	return &Program{Defs: defs}
}

func resolveAliases(defs []Def) {
	for i := range defs {
		if defs[i].Params != 0 {
			continue
		}
		did, ok := defs[i].Body.(DefId)
		if !ok {
			continue
		}
		defs[i].Params = defs[did.Index].Params
		defs[i].Body = defs[did.Index].Body
	}
}

func planDedup(defs []Def) (keep []bool, renumber []int) {
	length := len(defs)
	keep = make([]bool, length)
	renumber = make([]int, length)
	for i := range keep {
		keep[i] = true
		renumber[i] = i
	}

	type groupKey struct {
		params int
		body   string
	}
	groups := make(map[groupKey][]int)
	for i, d := range defs {
		if d.Body == nil {
			continue
		}
		k := groupKey{params: d.Params, body: key(d.Body)}
		groups[k] = append(groups[k], i)
	}

	for _, idxs := range groups {
		var named, unnamed []int
		for _, x := range idxs {
			if _, ok := defs[x].Name.(anon.Named); ok {
				named = append(named, x)
			} else {
				unnamed = append(unnamed, x)
			}
		}
		var target, start int
		if len(named) > 0 {
			target, start = named[0], 0
		} else {
			target, start = unnamed[0], 1
		}
		for _, x := range unnamed[start:] {
			keep[x] = false
			renumber[x] = target
		}
	}
	return keep, renumber
}

func renumberExpr(e ScExpr, table []int) ScExpr {
	switch v := e.(type) {
	case DefId:
		return DefId{Index: table[v.Index]}
	case ArgId, Prim:
		return v
	case App:
		return App{Fn: renumberExpr(v.Fn, table), Arg: renumberExpr(v.Arg, table)}
	default:
		return v
	}
}
