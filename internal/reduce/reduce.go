// Package reduce implements normal-order tree reduction over supercombinator
// trees: ReduceToWHNF repeatedly fires the head redex until none applies;
// ReduceToNF additionally normalizes every stack entry. Substituting a
// parameter referenced more than once deep-clones its argument tree at each
// occurrence, so reducing one occurrence never mutates another — no node is
// ever shared between two textual references to the same bound variable.
// Primitive applications are strict in their arguments (each is driven to
// WHNF and checked to be a bare integer before the host callback runs);
// everything else is call-by-name.
//
// Grounded on original_source/lamukoi/src/interpreter/tree_reducer.rs.
package reduce

import (
	"fmt"
	"strings"

	"github.com/Bubbler-4/lamukoi/internal/anon"
	"github.com/Bubbler-4/lamukoi/internal/lamerr"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// Node is a tree node: a head atom applied to a stack of argument nodes
// (leftmost-applied first).
type Node struct {
	Head  sc.Atom
	Stack []*Node
}

// NewRoot builds the initial Node for a program's entry point def index.
func NewRoot(defIndex int) *Node {
	return &Node{Head: sc.AtomSc{Index: defIndex}}
}

// Substitute builds a fresh Node for expr, replacing each ArgId(i) with
// args[i] and each DefId(i) with a bare reference to def i.
func Substitute(expr sc.ScExpr, args []*Node) *Node {
	n := &Node{}
	substituteInto(n, expr, args)
	return n
}

func substituteInto(n *Node, expr sc.ScExpr, args []*Node) {
	switch e := expr.(type) {
	case sc.DefId:
		n.Head = sc.AtomSc{Index: e.Index}
	case sc.ArgId:
		// Deep-clone the argument tree rather than aliasing its stack
		// entries: each textual occurrence of this ArgId must reduce
		// independently, otherwise firing a redex under one occurrence
		// (which mutates the Node in place) would be silently observed by
		// every other occurrence too.
		clone := deepClone(args[e.Index])
		n.Head = clone.Head
		n.Stack = append(append([]*Node(nil), clone.Stack...), n.Stack...)
	case sc.Prim:
		n.Head = sc.AtomPrim{Value: e.Value}
	case sc.App:
		argNode := Substitute(e.Arg, args)
		n.Stack = append([]*Node{argNode}, n.Stack...)
		substituteInto(n, e.Fn, args)
	}
}

// deepClone recursively copies n and every node transitively reachable
// through its Stack, mirroring the original's #[derive(Clone)] Node.
func deepClone(n *Node) *Node {
	clone := &Node{Head: n.Head}
	if len(n.Stack) > 0 {
		clone.Stack = make([]*Node, len(n.Stack))
		for i, s := range n.Stack {
			clone.Stack[i] = deepClone(s)
		}
	}
	return clone
}

// Reducer drives reduction against a fixed compiled program.
type Reducer struct {
	prog *sc.ScPrimProgram
}

// New returns a Reducer bound to prog.
func New(prog *sc.ScPrimProgram) *Reducer {
	return &Reducer{prog: prog}
}

// ReduceToWHNF fires head redexes against root until none applies.
func (r *Reducer) ReduceToWHNF(root *Node) error {
	for {
		did, err := r.reduceHeadOnce(root)
		if err != nil {
			return err
		}
		if !did {
			return nil
		}
	}
}

// ReduceToNF drives root (and, recursively, every stack entry) to normal
// form: WHNF everywhere, with no further redex anywhere in the tree.
func (r *Reducer) ReduceToNF(root *Node) error {
	if err := r.ReduceToWHNF(root); err != nil {
		return err
	}
	for _, arg := range root.Stack {
		if err := r.ReduceToNF(arg); err != nil {
			return err
		}
	}
	return nil
}

// reduceHeadOnce fires at most one head redex, reporting whether it fired.
func (r *Reducer) reduceHeadOnce(root *Node) (bool, error) {
	head, ok := root.Head.(sc.AtomSc)
	if !ok {
		return false, nil
	}
	def := r.prog.Defs[head.Index]
	if len(root.Stack) < def.Params {
		return false, nil
	}

	switch body := def.Body.(type) {
	case sc.BodyExpr:
		args := root.Stack[:def.Params]
		node := Substitute(body.Expr, args)
		root.Head = node.Head
		root.Stack = append(append([]*Node(nil), node.Stack...), root.Stack[def.Params:]...)
		return true, nil

	case sc.BodyPrim:
		name, ok := def.Name.(anon.Named)
		if !ok {
			return false, lamerr.UnnamedPrimop(head.Index)
		}
		primArgs := make([]int64, def.Params)
		for i := 0; i < def.Params; i++ {
			arg := root.Stack[i]
			if err := r.ReduceToWHNF(arg); err != nil {
				return false, err
			}
			prim, isPrim := arg.Head.(sc.AtomPrim)
			if !isPrim || len(arg.Stack) != 0 {
				return false, lamerr.UnexpectedPrimApp(string(name), r.whnfToString(arg))
			}
			primArgs[i] = prim.Value
		}
		result, ok := body.Op(primArgs)
		if !ok {
			return false, lamerr.PrimopFailure(string(name), formatArgs(primArgs))
		}
		root.Head = result
		root.Stack = root.Stack[def.Params:]
		return true, nil

	default:
		return false, nil
	}
}

func (r *Reducer) whnfToString(n *Node) string {
	var head string
	switch h := n.Head.(type) {
	case sc.AtomSc:
		head = r.prog.Defs[h.Index].Name.String()
	case sc.AtomPrim:
		head = fmt.Sprintf("%d", h.Value)
	}
	return head + strings.Repeat(" (..)", len(n.Stack))
}

// Render renders a node already in normal form as a parenthesized
// application tree, using def names from the bound program.
func (r *Reducer) Render(n *Node) string {
	out := r.headString(n)
	for _, arg := range n.Stack {
		out += " " + r.renderArg(arg)
	}
	return out
}

func (r *Reducer) renderArg(n *Node) string {
	if len(n.Stack) == 0 {
		return r.headString(n)
	}
	return "(" + r.Render(n) + ")"
}

func (r *Reducer) headString(n *Node) string {
	switch h := n.Head.(type) {
	case sc.AtomSc:
		return r.prog.Defs[h.Index].Name.String()
	case sc.AtomPrim:
		return fmt.Sprintf("%d", h.Value)
	default:
		return "?"
	}
}

func formatArgs(args []int64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%d", a)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
