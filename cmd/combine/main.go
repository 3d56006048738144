package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/combine/parse"
)

var log = commonlog.GetLogger("combine")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "combine",
		Short: "A toasty parser combinator toolkit",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newMatchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput joins the positional arguments, falling back to stdin when
// none are given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// renderParseError recolors the fixed three-line rendering: message line
// bold red, caret line red. The color package honors NO_COLOR and
// non-terminal output, so the bytes stay exact when piped.
func renderParseError(err error) error {
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return err
	}
	lines := strings.SplitN(perr.Error(), "\n", 3)
	if len(lines) == 3 {
		lines[0] = color.New(color.FgRed, color.Bold).Sprint(lines[0])
		lines[2] = color.New(color.FgRed).Sprint(lines[2])
	}
	return errors.New(strings.Join(lines, "\n"))
}
