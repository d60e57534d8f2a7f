package main

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/knit/parse"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newNumbersCmd() *cobra.Command {
	var width string

	cmd := &cobra.Command{
		Use:   "numbers [text...]",
		Short: "Parse a whitespace-separated run of numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			log.Debugf("parsing numbers with width %s", width)

			c := parse.NewCursor(input)
			var lines []string
			switch width {
			case "64":
				for _, v := range parse.Numbers(c) {
					lines = append(lines, strconv.FormatUint(v, 10))
				}
			case "256":
				for _, v := range parse.Interleaved[*uint256.Int, struct{}](c, parse.Uint256, parse.Whitespace) {
					lines = append(lines, v.ToBig().String())
				}
			case "decimal":
				for _, v := range parse.Interleaved[decimal.Decimal, struct{}](c, parse.Decimal, parse.Whitespace) {
					lines = append(lines, v.String())
				}
			default:
				return fmt.Errorf("unknown width: %s (expected 64, 256 or decimal)", width)
			}

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			printRest(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVarP(&width, "width", "w", "64", "number type (64, 256, decimal)")

	return cmd
}
