package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/knit/parse"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no match")

// readInput joins the text arguments, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printRest(cmd *cobra.Command, c *parse.Cursor) {
	log.Debugf("consumed %d bytes, %d left", c.Offset(), c.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "rest: %q\n", c.Remaining())
}

// runSingle applies p once and prints its value followed by the remainder.
func runSingle(cmd *cobra.Command, p parse.Parser[string], input string) error {
	c := parse.NewCursor(input)
	v, err := p.ParseNext(c)
	if err != nil {
		printRest(cmd, c)
		if parse.IsBacktrack(err) {
			return errNoMatch
		}
		return fmt.Errorf("parse: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	printRest(cmd, c)
	return nil
}
