package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/unitconv/pkg/service"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running the bare binary starts the
// REPL; `convert` performs a one-shot conversion and `units` lists the
// catalog.
func NewRootCmd(converter *service.Converter, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "unitconv",
		Short: "Convert between physical units and currencies",
		Long: "unitconv converts between static physical units (length, mass) and " +
			"currencies using live exchange rates cached locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := NewREPL(converter, os.Stdin, cmd.OutOrStdout(), logger)
			return repl.Run(cmd.Context())
		},
	}

	convertCmd := &cobra.Command{
		Use:   `convert <value> <unit> "->" <unit>`,
		Short: "Convert once and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if parsed.Kind != KindConvert {
				return ErrParse
			}
			result, err := converter.Convert(cmd.Context(), parsed.Value, parsed.From, parsed.To)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), FormatValue(result, parsed.To))
			return nil
		},
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List all available units grouped by category",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), UnitsListing())
		},
	}

	root.AddCommand(convertCmd, unitsCmd)
	return root
}
