package main

import (
	"github.com/dhamidi/knit/parse"
	"github.com/spf13/cobra"
)

func newLiteralCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "literal <word> [text...]",
		Short: "Match a literal word at the start of the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			log.Debugf("matching %q", args[0])
			return runSingle(cmd, parse.Literal(args[0]), input)
		},
	}
}
