package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/unitconv/pkg/service"
	"github.com/fatih/color"
)

// REPL reads commands from in and writes results to out until the user
// exits or input ends. Each command runs to completion before the next is
// read; errors are reported and the loop continues.
type REPL struct {
	converter *service.Converter
	in        io.Reader
	out       io.Writer
	logger    *slog.Logger
}

// NewREPL creates a REPL bound to the given streams.
func NewREPL(converter *service.Converter, in io.Reader, out io.Writer, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{converter: converter, in: in, out: out, logger: logger}
}

// Run starts the loop. It returns nil on exit or end of input; only an
// input stream failure is an error.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Enter a conversion expression (e.g. 100 m -> km) or 'exit' to exit.")

	prompt := color.New(color.FgCyan).Sprint("> ")
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := scanner.Text()

		cmd, err := Parse(line)
		if err != nil {
			fmt.Fprintln(r.out, color.RedString(err.Error()))
			continue
		}
		if cmd.Kind == KindExit {
			return nil
		}
		fmt.Fprintln(r.out, r.Execute(ctx, cmd))
	}
}

// Execute runs a single non-exit command and returns its printable output.
func (r *REPL) Execute(ctx context.Context, cmd Command) string {
	switch cmd.Kind {
	case KindConvert:
		result, err := r.converter.Convert(ctx, cmd.Value, cmd.From, cmd.To)
		if err != nil {
			r.logger.Debug("conversion failed", "error", err)
			return color.RedString("Conversion error: %v", err)
		}
		return color.GreenString(FormatValue(result, cmd.To))
	case KindUnits:
		return UnitsListing()
	case KindHelp:
		return HelpText
	default:
		return ""
	}
}
