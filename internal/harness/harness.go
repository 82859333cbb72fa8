// Package harness runs a manifest example end to end: compile the program
// plus prelude, attach the reference primitive set bound to an in-memory
// input/output device pair, and reduce the entry point.
//
// Grounded on a RunResult-style outcome-reporting convention, adapted from
// subprocess execution to in-process reduction since there is no
// generated-code subprocess here.
package harness

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Bubbler-4/lamukoi/internal/ast"
	"github.com/Bubbler-4/lamukoi/internal/builtins"
	"github.com/Bubbler-4/lamukoi/internal/manifest"
	"github.com/Bubbler-4/lamukoi/internal/pipeline"
	"github.com/Bubbler-4/lamukoi/internal/reduce"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// syncBuffer guards a bytes.Buffer so the reducer goroutine (still writing
// output after a timed-out Run abandons it, per the package comment on
// Result.Truncated) never races with the snapshot Run hands back to its
// caller.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// snapshot copies out whatever has been written so far.
func (b *syncBuffer) snapshot() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

// Result captures one example's outcome.
type Result struct {
	Name       string
	Output     []byte
	NormalForm string
	// Truncated is set when ctx expired before the entry point reached
	// normal form — expected for infinite-stream examples, whose reducer
	// goroutine has no suspension points of its own and is simply
	// abandoned running; callers terminate externally and accept that
	// any further output is lost.
	Truncated bool
	// Passed reports whether the example met every expectation its
	// manifest entry declared (ExpectOutput, ExpectNormalForm,
	// MaxOutputBytes). An example with no expectations passes as long as
	// it reduced to normal form at all. FailureReason names which
	// expectation failed, empty when Passed is true.
	Passed        bool
	FailureReason string
}

// Run compiles prog (which should already include any prelude defs the
// example needs), reduces ex.Entry to normal form, and checks the captured
// SHOW output and rendered result against whatever expectations ex
// declares. If ctx is cancelled first, Run returns the output captured so
// far with Truncated set and Passed false, and no error.
func Run(ctx context.Context, prog ast.Program, ex manifest.Example) (*Result, error) {
	scProg, err := pipeline.Compile(prog)
	if err != nil {
		return nil, err
	}
	table := scProg.DefIndexes()
	entryIdx, ok := table[ex.Entry]
	if !ok {
		return nil, fmt.Errorf("harness: unknown entry point %q", ex.Entry)
	}

	input := builtins.NewInputDevice(strings.NewReader(ex.Input))
	outBuf := &syncBuffer{}
	output := builtins.NewOutputDevice(outBuf)
	registry := builtins.Registry(table, input, output)

	primProg, err := sc.AttachPrimitives(scProg, registry)
	if err != nil {
		return nil, err
	}

	reducer := reduce.New(primProg)
	root := reduce.NewRoot(entryIdx)

	done := make(chan error, 1)
	go func() { done <- reducer.ReduceToNF(root) }()

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
		_ = output.Flush()
		res := &Result{Name: ex.Name, Output: outBuf.snapshot(), NormalForm: reducer.Render(root)}
		res.Passed, res.FailureReason = evaluate(ex, res)
		return res, nil
	case <-ctx.Done():
		// output.Flush races the abandoned reducer goroutine too, since it
		// may still be mid-write; the unflushed trailing partial byte (if
		// any) is simply lost, matching OutputDevice's own never-flush-a-
		// partial-byte rule.
		return &Result{
			Name:          ex.Name,
			Output:        outBuf.snapshot(),
			Truncated:     true,
			FailureReason: "reduction did not reach normal form before the deadline",
		}, nil
	}
}

// evaluate checks res against every expectation ex declares, in the order
// a reader would want to know about them: a byte budget overrun first
// (cheapest to explain), then the exact output, then the rendered normal
// form.
func evaluate(ex manifest.Example, res *Result) (bool, string) {
	if ex.MaxOutputBytes > 0 && len(res.Output) > ex.MaxOutputBytes {
		return false, fmt.Sprintf("output %d bytes exceeds max_output_bytes %d", len(res.Output), ex.MaxOutputBytes)
	}
	if ex.ExpectOutput != "" && string(res.Output) != ex.ExpectOutput {
		return false, fmt.Sprintf("output %q, expected %q", res.Output, ex.ExpectOutput)
	}
	if ex.ExpectNormalForm != "" && res.NormalForm != ex.ExpectNormalForm {
		return false, fmt.Sprintf("normal form %q, expected %q", res.NormalForm, ex.ExpectNormalForm)
	}
	return true, ""
}
