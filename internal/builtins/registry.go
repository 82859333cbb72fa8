package builtins

import "github.com/Bubbler-4/lamukoi/internal/sc"

// Registry builds the EQ/ADD/SUB/READ/SHOW primop table. table must map
// the combinator names READ and SHOW depend on ("cBit1", "cBit0", "cNil",
// "sShow") to their def indexes in the program the table was built
// against — ordinarily DefIndexes() of the sc.Program the primops will be
// attached to (attachment keeps every def at its index).
func Registry(table map[string]int, input *InputDevice, output *OutputDevice) map[string]sc.Primop {
	return map[string]sc.Primop{
		"EQ": func(args []int64) (sc.Atom, bool) {
			if args[0] == args[1] {
				return sc.AtomPrim{Value: 1}, true
			}
			return sc.AtomPrim{Value: 0}, true
		},
		"ADD": func(args []int64) (sc.Atom, bool) {
			return sc.AtomPrim{Value: args[0] + args[1]}, true
		},
		"SUB": func(args []int64) (sc.Atom, bool) {
			return sc.AtomPrim{Value: args[0] - args[1]}, true
		},
		"READ": func(args []int64) (sc.Atom, bool) {
			bit, ok := input.Read()
			switch {
			case !ok:
				return sc.AtomSc{Index: table["cNil"]}, true
			case bit == 1:
				return sc.AtomSc{Index: table["cBit1"]}, true
			default:
				return sc.AtomSc{Index: table["cBit0"]}, true
			}
		},
		"SHOW": func(args []int64) (sc.Atom, bool) {
			if err := output.Write(args[0]); err != nil {
				return nil, false
			}
			return sc.AtomSc{Index: table["sShow"]}, true
		},
	}
}
