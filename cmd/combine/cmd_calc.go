package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combine/calc"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [expr...]",
		Short: "Evaluate an integer arithmetic expression",
		Long: `Evaluate an integer arithmetic expression and print the result.

Supports + - * / with the usual precedence, parentheses, and arbitrary
whitespace. Reads the expression from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			value, loc, err := calc.New().ParseWithLocation(input)
			if err != nil {
				return renderParseError(err)
			}
			log.Infof("evaluated %q spanning [%d,%d)", loc.Lexeme, loc.Start, loc.End)
			fmt.Println(value)
			return nil
		},
	}
}
