// Command lamukoi compiles and reduces the bundled example programs: list
// them, run one to normal form, or drive one interactively over a liner
// REPL that feeds it bits a line at a time.
//
// Layout grounded on a flag-parsing, colored-output, ldflags-injected-version
// CLI convention, and the REPL on a liner-based session shape.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/Bubbler-4/lamukoi/internal/builtins"
	"github.com/Bubbler-4/lamukoi/internal/examples"
	"github.com/Bubbler-4/lamukoi/internal/manifest"
	"github.com/Bubbler-4/lamukoi/internal/pipeline"
	"github.com/Bubbler-4/lamukoi/internal/reduce"
	"github.com/Bubbler-4/lamukoi/internal/sc"
)

// Version info, set by ldflags during build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

const manifestPath = "examples/manifest.yaml"

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(1)
	}

	switch cmd := flag.Arg(0); cmd {
	case "version":
		printVersion()
	case "list":
		cmdList()
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing example name\n", red("Error"))
			fmt.Println("Usage: lamukoi run <name>")
			os.Exit(1)
		}
		cmdRun(flag.Arg(1))
	case "repl":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing example name\n", red("Error"))
			fmt.Println("Usage: lamukoi repl <name>")
			os.Exit(1)
		}
		cmdRepl(flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), cmd)
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("lamukoi %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("built:  %s\n", BuildTime)
	}
}

func printHelp() {
	fmt.Println(bold("lamukoi - a minimal supercombinator compiler and reducer"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lamukoi <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s            list the bundled example programs\n", cyan("list"))
	fmt.Printf("  %s <name>      compile and reduce an example to normal form\n", cyan("run"))
	fmt.Printf("  %s <name>     interactively feed bits to a READ-driven example\n", cyan("repl"))
	fmt.Printf("  %s         print version information\n", cyan("version"))
}

func cmdList() {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	for _, ex := range m.Examples {
		fmt.Printf("%s - %s\n", bold(ex.Name), ex.Description)
	}
}

func cmdRun(name string) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	ex, ok := m.Find(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no such example %q\n", red("Error"), name)
		os.Exit(1)
	}
	prog, ok := examples.Build(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: example %q has no registered program\n", red("Error"), name)
		os.Exit(1)
	}

	scProg, err := pipeline.Compile(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("compile error"), err)
		os.Exit(1)
	}
	table := scProg.DefIndexes()
	entryIdx, ok := table[ex.Entry]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: entry point %q not found\n", red("Error"), ex.Entry)
		os.Exit(1)
	}

	input := builtins.NewInputDevice(strings.NewReader(ex.Input))
	output := builtins.NewOutputDevice(os.Stdout)
	registry := builtins.Registry(table, input, output)

	primProg, err := sc.AttachPrimitives(scProg, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("link error"), err)
		os.Exit(1)
	}

	r := reduce.New(primProg)
	root := reduce.NewRoot(entryIdx)

	timeout := 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.ReduceToNF(root) }()

	select {
	case err := <-done:
		_ = output.Flush()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s: %v\n", red("runtime error"), err)
			os.Exit(1)
		}
		if ex.Input == "" {
			fmt.Printf("\n%s %s\n", green("=>"), r.Render(root))
		}
	case <-ctx.Done():
		// The reducer goroutine is abandoned running past this point (no
		// cancellation inside the core reducer), so it may still be
		// mid-write; skip the redundant Flush here rather than race its
		// own internal bufio.Writer state. OutputDevice.Write already
		// flushes synchronously after every completed byte.
		fmt.Fprintf(os.Stderr, "\n%s: reduction exceeded %s\n", yellow("timeout"), timeout)
	}
}

func cmdRepl(name string) {
	prog, ok := examples.Build(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no such example %q\n", red("Error"), name)
		os.Exit(1)
	}
	scProg, err := pipeline.Compile(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("compile error"), err)
		os.Exit(1)
	}
	table := scProg.DefIndexes()
	entryIdx, ok := table[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: entry point %q not found\n", red("Error"), name)
		os.Exit(1)
	}

	feed := &feedReader{}
	input := builtins.NewInputDevice(feed)
	output := builtins.NewOutputDevice(os.Stdout)
	registry := builtins.Registry(table, input, output)
	primProg, err := sc.AttachPrimitives(scProg, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("link error"), err)
		os.Exit(1)
	}

	r := reduce.New(primProg)
	root := reduce.NewRoot(entryIdx)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("%s %s\n", bold("lamukoi repl"), dim(fmt.Sprintf("(%s)", name)))
	fmt.Println(dim("Type a line of bytes to feed the input device, :quit to exit."))

	for {
		text, err := line.Prompt("bits> ")
		if err != nil {
			fmt.Println(green("\ngoodbye"))
			return
		}
		if text == ":quit" {
			return
		}
		line.AppendHistory(text)
		feed.push(text + "\n")

		if err := r.ReduceToWHNF(root); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("runtime error"), err)
			return
		}
		_ = output.Flush()
	}
}

// feedReader is an io.Reader fed byte slices on demand from the REPL loop,
// blocking reads past what has been pushed so far return EOF instead of
// stalling — a READ-driven program sees "no more input yet" as EOF on its
// current line and simply waits for the next prompt to supply more.
type feedReader struct {
	buf []byte
}

func (f *feedReader) push(s string) { f.buf = append(f.buf, []byte(s)...) }

func (f *feedReader) Read(p []byte) (int, error) {
	if len(f.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.buf)
	f.buf = f.buf[n:]
	return n, nil
}

func dim(s string) string { return color.New(color.Faint).Sprint(s) }
