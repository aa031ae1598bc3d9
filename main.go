package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/trac-lang/gotrac/internal/textinput"
)

// idleProgram is the classic TRAC idling procedure: read one record, execute
// it, print what it evaluates to, start over.
const idleProgram = "#(ps,#(rs))'"

// promptIdleProgram is the interactive variant, where the processor prints
// its own prompt before reading.
const promptIdleProgram = "#(ps,(\r\nTRAC> ))#(ps,#(rs))'"

const usage = `gotrac - a TRAC T-64 processor

Usage:
  gotrac [--trace] [--timeout=DURATION] [SOURCE...]

Arguments:
  SOURCE  Program text: @TEXT supplies TEXT itself, any other argument names
          a file to read. Sources are fed to the processor in order,
          separated by newlines. With no sources and a terminal on stdin,
          gotrac prompts for records interactively.

Options:
  --trace              Enable scanner trace logging on stderr.
  --timeout=DURATION   Give up after DURATION (e.g. 5s, 1m).
  -h, --help           Show this help.
`

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// error in the usage doc itself
		panic(err.Error())
	}

	var timeout time.Duration
	if s, _ := opts.String("--timeout"); s != "" {
		if timeout, err = time.ParseDuration(s); err != nil {
			fmt.Fprintf(os.Stderr, "bad --timeout: %v\n", err)
			return 2
		}
	}
	trace, _ := opts.Bool("--trace")
	sources, _ := opts["SOURCE"].([]string)

	var topts []Option
	if trace {
		topts = append(topts, WithLogf(log.Printf))
	}

	switch {
	case len(sources) > 0:
		in, err := openSources(sources)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		topts = append(topts, WithRuneInput(in), WithIdle(idleProgram))

	case isatty.IsTerminal(os.Stdin.Fd()):
		cli := liner.NewLiner()
		cli.SetCtrlCAborts(true)
		defer cli.Close()
		topts = append(topts, WithInput(&linerInput{cli: cli}), WithIdle(promptIdleProgram))

	default:
		topts = append(topts, WithInput(os.Stdin), WithIdle(idleProgram))
	}
	topts = append(topts, WithOutput(os.Stdout))

	tr := New(topts...)
	defer tr.Close()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := tr.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		return 1
	}
	return 0
}

// openSources builds the queued character source for the command line
// operands: @TEXT is literal program text, anything else is a file name.
func openSources(args []string) (*textinput.Input, error) {
	var in textinput.Input
	for _, arg := range args {
		if text, isLiteral := strings.CutPrefix(arg, "@"); isLiteral {
			in.Queue = append(in.Queue, textinput.Named("@", strings.NewReader(text)))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return &in, nil
}

// linerInput adapts a liner editor into the processor's character source:
// one edited line per Read, newline included. The prompt itself is printed
// by the idle program, so liner prompts with nothing.
type linerInput struct {
	cli *liner.State
	buf []byte
}

func (li *linerInput) Read(p []byte) (int, error) {
	if len(li.buf) == 0 {
		line, err := li.cli.Prompt("")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			return 0, io.EOF
		default:
			return 0, err
		}
		if line != "" {
			li.cli.AppendHistory(line)
		}
		li.buf = append(li.buf, line...)
		li.buf = append(li.buf, '\n')
	}
	n := copy(p, li.buf)
	li.buf = li.buf[n:]
	return n, nil
}
