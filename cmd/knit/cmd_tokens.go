package main

import (
	"fmt"

	"github.com/dhamidi/knit/parse"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [text...]",
		Short: "Split text into whitespace-separated tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			log.Debugf("tokenizing %d bytes", len(input))

			c := parse.NewCursor(input)
			parse.Whitespace.ParseNext(c)
			for _, tok := range parse.Interleaved[string, struct{}](c, parse.Token, parse.Whitespace) {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			printRest(cmd, c)
			return nil
		},
	}
}
