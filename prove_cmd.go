package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boolcomb/nicesets/defn"
)

func proveCmd() *cobra.Command {
	var flags engineFlags
	cmd := &cobra.Command{
		Use:   "prove TARGET BASIS...",
		Short: "decide whether the target is a bounded composition of the basis",
		Long: `Decides whether TARGET can be expressed as a composition of the BASIS
connectives within the depth bound, and prints the witness tree when one
exists. Connectives are given by catalogue name, for example:

  nicesets prove XOR AND OR NOT`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			cs, err := parseConnectives(args)
			if err != nil {
				return err
			}
			target, basis := cs[0], cs[1:]

			res, err := defn.IsDefinable(cmd.Context(), target, basis, opts.Depth, opts.Mode, &defn.Options{
				Strategy:      opts.Strategy,
				SolverTimeout: opts.SolverTimeout,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s from %v at depth %d: %s\n", target, basis, opts.Depth, res.Outcome)
			if res.Witness != nil {
				fmt.Printf("witness: %s = %s\n", target.Name(), res.Witness)
			}
			switch res.Outcome {
			case defn.Undefinable:
				os.Exit(exitFail)
			case defn.Indet:
				os.Exit(exitInconclusive)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
