package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/boolcomb/nicesets/conn"
	"github.com/boolcomb/nicesets/defn"
	"github.com/boolcomb/nicesets/search"
)

func benchCmd() *cobra.Command {
	var flags engineFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time the two definability strategies on the binary pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			pool := conn.AllBinary()
			for _, strategy := range []defn.Strategy{defn.Enumeration, defn.SAT} {
				o := opts
				o.Strategy = strategy
				start := time.Now()
				res, err := search.FindMaximumNiceSet(cmd.Context(), pool, o)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s max=%d sets=%d candidates=%d conclusive=%v elapsed=%s\n",
					strategy, res.MaxSize, len(res.Sets), res.Metadata.Candidates,
					res.Conclusive, time.Since(start).Round(time.Millisecond))
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
