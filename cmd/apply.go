package cmd

import (
	"fmt"

	"github.com/magmast/sq/internal/state"
	"github.com/magmast/sq/pkg/transform"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var (
		strategy string
		compare  bool
	)

	cmd := &cobra.Command{
		Use:   "apply [x...]",
		Short: "Square every number of a sequence",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := state.Get(cmd.Context()).Strategy(strategy)
			if err != nil {
				return err
			}

			n, err := parseNumbers(args)
			if err != nil {
				return err
			}

			log.Debug().Str("strategy", string(st)).Int("len", len(args)).Bool("float", n.float).Bool("compare", compare).Msg("squaring sequence")

			var out string
			if n.float {
				res, err := squareAll(st, transform.Square[float64], n.floats, compare)
				if err != nil {
					return err
				}
				out = format(res)
			} else {
				res, err := squareAll(st, transform.Square[int64], n.ints, compare)
				if err != nil {
					return err
				}
				out = format(res)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy to use: vectorized or map (default from config)")
	cmd.Flags().BoolVar(&compare, "compare", false, "Also run the other strategy and fail if results differ")

	return cmd
}
