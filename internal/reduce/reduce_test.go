package reduce

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bubbler-4/lamukoi/internal/anon"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// idConstProg builds a tiny program: id x = x (def 0), and const a b = a (def 1).
func idConstProg() *sc.ScPrimProgram {
	return &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("id"), Params: 1, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
		{Name: anon.Named("const"), Params: 2, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
	}}
}

func TestReduceToWHNFAppliesSupercombinator(t *testing.T) {
	prog := idConstProg()
	r := New(prog)
	root := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{{Head: sc.AtomPrim{Value: 7}}}}
	require.NoError(t, r.ReduceToWHNF(root))
	assert.Equal(t, sc.AtomPrim{Value: 7}, root.Head)
	assert.Len(t, root.Stack, 0)
}

func TestReduceToWHNFLeavesUnderSaturatedApplicationAlone(t *testing.T) {
	prog := idConstProg()
	r := New(prog)
	// const applied to only one argument: no redex fires.
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{{Head: sc.AtomPrim{Value: 1}}}}
	require.NoError(t, r.ReduceToWHNF(root))
	assert.Equal(t, sc.AtomSc{Index: 1}, root.Head)
	assert.Len(t, root.Stack, 1)
}

func TestReduceToWHNFCarriesOverLeftoverStackAcrossARedex(t *testing.T) {
	// const a b = a, applied to (id, 9, 99): fires const(id,9) -> id, with
	// the leftover argument 99 still in the stack; then id fires on 99.
	prog := idConstProg()
	r := New(prog)
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{
		{Head: sc.AtomSc{Index: 0}},
		{Head: sc.AtomPrim{Value: 9}},
		{Head: sc.AtomPrim{Value: 99}},
	}}
	require.NoError(t, r.ReduceToWHNF(root))
	assert.Equal(t, sc.AtomPrim{Value: 99}, root.Head)
	assert.Len(t, root.Stack, 0)
}

func TestReduceStrictPrimitiveArgument(t *testing.T) {
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("id"), Params: 1, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
		{Name: anon.Named("ADD"), Params: 2, Body: sc.BodyPrim{Op: func(args []int64) (sc.Atom, bool) {
			return sc.AtomPrim{Value: args[0] + args[1]}, true
		}}},
	}}
	r := New(prog)
	// ADD (id 3) 4: the first argument is a redex that must be reduced to
	// WHNF before ADD's callback can run.
	idApplied := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{{Head: sc.AtomPrim{Value: 3}}}}
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{idApplied, {Head: sc.AtomPrim{Value: 4}}}}
	require.NoError(t, r.ReduceToWHNF(root))
	assert.Equal(t, sc.AtomPrim{Value: 7}, root.Head)
}

func TestReducePrimitiveOnNonIntegerArgumentFails(t *testing.T) {
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("id"), Params: 1, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
		{Name: anon.Named("ADD"), Params: 2, Body: sc.BodyPrim{Op: func(args []int64) (sc.Atom, bool) {
			return sc.AtomPrim{Value: args[0] + args[1]}, true
		}}},
	}}
	r := New(prog)
	// ADD id 4: "id" alone (no argument supplied) is a supercombinator head
	// that can never reduce to a bare integer.
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{
		{Head: sc.AtomSc{Index: 0}},
		{Head: sc.AtomPrim{Value: 4}},
	}}
	err := r.ReduceToWHNF(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RT001")
}

func TestReducePrimopFailureIsReported(t *testing.T) {
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("DIV"), Params: 2, Body: sc.BodyPrim{Op: func(args []int64) (sc.Atom, bool) {
			if args[1] == 0 {
				return nil, false
			}
			return sc.AtomPrim{Value: args[0] / args[1]}, true
		}}},
	}}
	r := New(prog)
	root := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{
		{Head: sc.AtomPrim{Value: 10}},
		{Head: sc.AtomPrim{Value: 0}},
	}}
	err := r.ReduceToWHNF(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RT002")
}

func TestReduceToNFNormalizesNestedStackEntries(t *testing.T) {
	// pair a b = a b (just an App wrapper so the stack holds an un-reduced
	// redex): const 5 6 applied inside, must get normalized too.
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("const"), Params: 2, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
		{Name: anon.Named("pair"), Params: 2, Body: sc.BodyExpr{
			Expr: sc.App{Fn: sc.ArgId{Index: 0}, Arg: sc.ArgId{Index: 1}},
		}},
	}}
	r := New(prog)
	innerRedex := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{
		{Head: sc.AtomPrim{Value: 5}},
		{Head: sc.AtomPrim{Value: 6}},
	}}
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{
		innerRedex,
		{Head: sc.AtomPrim{Value: 1}},
	}}
	require.NoError(t, r.ReduceToNF(root))
	// pair's body is "ArgId0 ArgId1" i.e. innerRedex applied to 1: "const 5
	// 6 1". const is saturated by 5 and 6 and reduces to 5, leaving the extra
	// "1" on the stack of the stuck primitive head.
	assert.Equal(t, sc.AtomPrim{Value: 5}, root.Head)
}

func TestReduceToNFLeavesShapeMatchingExpectedTree(t *testing.T) {
	// pair a b = a b, applied to (const, 5, 6), 1: same redex as above, but
	// asserted via a structural tree diff rather than just the final head.
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("const"), Params: 2, Body: sc.BodyExpr{Expr: sc.ArgId{Index: 0}}},
		{Name: anon.Named("pair"), Params: 2, Body: sc.BodyExpr{
			Expr: sc.App{Fn: sc.ArgId{Index: 0}, Arg: sc.ArgId{Index: 1}},
		}},
	}}
	r := New(prog)
	innerRedex := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{
		{Head: sc.AtomPrim{Value: 5}},
		{Head: sc.AtomPrim{Value: 6}},
	}}
	root := &Node{Head: sc.AtomSc{Index: 1}, Stack: []*Node{
		innerRedex,
		{Head: sc.AtomPrim{Value: 1}},
	}}
	require.NoError(t, r.ReduceToNF(root))

	want := &Node{Head: sc.AtomPrim{Value: 5}, Stack: []*Node{{Head: sc.AtomPrim{Value: 1}}}}
	if diff := cmp.Diff(want, root, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("reduced tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFormatsApplicationTree(t *testing.T) {
	prog := &sc.ScPrimProgram{Defs: []sc.ScPrimDef{
		{Name: anon.Named("f"), Params: 0, Body: sc.BodyExpr{Expr: sc.Prim{Value: 0}}},
	}}
	r := New(prog)
	root := &Node{Head: sc.AtomSc{Index: 0}, Stack: []*Node{
		{Head: sc.AtomPrim{Value: 1}},
		{Head: sc.AtomPrim{Value: 2}},
	}}
	assert.Equal(t, "f 1 2", r.Render(root))
}
