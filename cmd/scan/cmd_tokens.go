package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/scan/ebnfscan"
)

var log = commonlog.GetLogger("scan.tokens")

func newTokensCmd() *cobra.Command {
	var skipKinds []string

	cmd := &cobra.Command{
		Use:   "tokens <grammar> [file]",
		Short: "Tokenize a file with an EBNF grammar",
		Long: `Tokenize a file (or stdin) with the token productions of an EBNF grammar.
Failures are reported with the character offset of the offending input.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := loadGrammar(args[0])
			if err != nil {
				printErrors(err)
				return err
			}

			var input []byte
			if len(args) == 2 {
				input, err = os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			} else {
				input, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			skip := make(map[string]bool, len(skipKinds))
			for _, kind := range skipKinds {
				skip[kind] = true
			}

			tokenizer := ebnfscan.NewTokenizer(grammar, string(input))
			for {
				tok, err := tokenizer.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("tokenize: %w", err)
				}
				log.Debugf("token %s %q at %d", tok.Kind, tok.Literal, tok.Offset)
				if skip[tok.Kind] {
					continue
				}
				fmt.Printf("%d\t%s\t%q\n", tok.Offset, tok.Kind, tok.Literal)
			}
		},
	}

	cmd.Flags().StringSliceVar(&skipKinds, "skip", nil, "token kinds to omit from the output (e.g. Space)")

	return cmd
}
