package cmd

import (
	"fmt"

	"github.com/magmast/sq/pkg/apply"
	"github.com/magmast/sq/pkg/transform"
	"github.com/spf13/cobra"
)

var demoInput = []int{1, 2, 3, 4, 5}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Square 6, then square 1..5 with both strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if _, err := fmt.Fprintf(w, "square(6) = %d\n", transform.Square(6)); err != nil {
				return err
			}

			sq := apply.Vectorize(transform.Square[int])
			if _, err := fmt.Fprintf(w, "vectorized %v = %v\n", demoInput, sq(demoInput)); err != nil {
				return err
			}

			mapped := apply.Map(demoInput, func(x int) int { return transform.Square(x) })
			_, err := fmt.Fprintf(w, "map %v = %v\n", demoInput, mapped)
			return err
		},
	}
}
