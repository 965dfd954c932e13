// Package cli implements the command grammar and the read-eval-print loop.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/amirasaad/unitconv/pkg/unit"
)

// Kind discriminates the commands a user can enter.
type Kind int

const (
	KindConvert Kind = iota
	KindUnits
	KindHelp
	KindExit
)

// Command is a parsed user command. Value, From and To are only meaningful
// for KindConvert.
type Command struct {
	Kind  Kind
	Value float64
	From  unit.Unit
	To    unit.Unit
}

// ErrParse indicates input that matches no command.
var ErrParse = errors.New(
	"invalid input; expression should be in the form <value> <unit> -> <unit>")

// convertPattern matches "<value> <unit> -> <unit>".
var convertPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(.+?)\s*->\s*(.+)$`)

// Parse turns a line of user input into a Command.
func Parse(input string) (Command, error) {
	switch strings.TrimSpace(input) {
	case "units":
		return Command{Kind: KindUnits}, nil
	case "help":
		return Command{Kind: KindHelp}, nil
	case "exit":
		return Command{Kind: KindExit}, nil
	}
	return parseConversion(strings.TrimSpace(input))
}

func parseConversion(input string) (Command, error) {
	caps := convertPattern.FindStringSubmatch(input)
	if caps == nil {
		return Command{}, ErrParse
	}

	value, err := strconv.ParseFloat(caps[1], 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	from, err := unit.Lookup(caps[2])
	if err != nil {
		return Command{}, err
	}
	to, err := unit.Lookup(caps[3])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindConvert, Value: value, From: from, To: to}, nil
}

// FormatValue renders a conversion result the way the REPL prints it.
func FormatValue(value float64, u unit.Unit) string {
	return strconv.FormatFloat(value, 'g', -1, 64) + " " + u.String()
}

// UnitsListing renders all known units grouped by category.
func UnitsListing() string {
	var b strings.Builder
	b.WriteString("Available units:\n")
	for _, c := range unit.Categories() {
		fmt.Fprintf(&b, "%s:\n", c)
		for _, u := range unit.ByCategory(c) {
			fmt.Fprintf(&b, "  %s\n", u)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// HelpText is the command summary printed by the help command.
const HelpText = `Commands:
  <value> <unit> -> <unit>   convert a value (e.g. 100 m -> km)
  units                      list all available units grouped by category
  help                       show this help
  exit                       save exchange rates and quit`
