package main

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/knit/parse"
	"github.com/spf13/cobra"
)

func newFixedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed <n> [text...]",
		Short: "Take exactly n non-whitespace characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid length: %s", args[0])
			}
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			return runSingle(cmd, parse.FixedLength(n), input)
		},
	}
}
