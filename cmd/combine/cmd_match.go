package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combine/parse"
)

func newMatchCmd() *cobra.Command {
	var (
		tagLiteral   string
		regexPattern string
		whitespace   string
	)

	cmd := &cobra.Command{
		Use:   "match [input]",
		Short: "Run a single Tag or Regex rule against input",
		Long: `Run one primitive rule against the input and report the match.

A debugging aid for grammar authors: shows exactly which span a literal
or a greedy pattern consumes, including the effect of whitespace
skipping. Reads from stdin when no input argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (tagLiteral == "") == (regexPattern == "") {
				return fmt.Errorf("exactly one of --tag or --regex is required")
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}
			rule, err := compileRule(tagLiteral, regexPattern)
			if err != nil {
				return err
			}

			p := parse.Syntax(func(ctx *parse.Context) parse.Rule[parse.Location] {
				ctx.AddWhitespace([]rune(whitespace)...)
				return rule
			})
			loc, err := p.Parse(input)
			if err != nil {
				return renderParseError(err)
			}
			log.Infof("rule %s matched", rule.Name())
			fmt.Printf("matched %q at [%d,%d)\n", loc.Lexeme, loc.Start, loc.End)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tagLiteral, "tag", "t", "", "match this literal text")
	cmd.Flags().StringVarP(&regexPattern, "regex", "r", "", "match this pattern greedily")
	cmd.Flags().StringVarP(&whitespace, "whitespace", "w", " \t\r\n", "runes to skip transparently")

	return cmd
}

// compileRule builds the primitive, converting the construction-time
// panic of an invalid pattern into an error.
func compileRule(tagLiteral, regexPattern string) (rule parse.Rule[parse.Location], err error) {
	if tagLiteral != "" {
		return parse.Tag(tagLiteral), nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid pattern %q: %v", regexPattern, r)
		}
	}()
	return parse.Regex(regexPattern), nil
}
