package cmd

import (
	"fmt"

	"github.com/magmast/sq/pkg/transform"
	"github.com/spf13/cobra"
)

func newSquareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "square <x>",
		Short: "Print the square of a single number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumbers(args)
			if err != nil {
				return err
			}

			var out string
			if n.float {
				out = fmt.Sprint(transform.Square(n.floats[0]))
			} else {
				out = fmt.Sprint(transform.Square(n.ints[0]))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
