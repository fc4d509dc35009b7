package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boolcomb/nicesets/conn"
	"github.com/boolcomb/nicesets/search"
)

func searchCmd() *cobra.Command {
	var (
		flags       engineFlags
		maxArity    int
		incremental bool
		maxSize     int
		deadline    time.Duration
		jsonOut     bool
		outPath     string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "find the maximum nice set over all connectives up to a given arity",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			opts.MaxSize = maxSize

			ctx := cmd.Context()
			if deadline > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, deadline)
				defer cancel()
			}

			start := time.Now()
			var res search.Result
			if incremental {
				res, err = search.FindIncremental(ctx, maxArity, opts)
			} else {
				var pool []conn.Connective
				for ar := 1; ar <= maxArity; ar++ {
					class, gerr := conn.GenerateAll(ar)
					if gerr != nil {
						return gerr
					}
					pool = append(pool, class...)
				}
				res, err = search.FindMaximumNiceSet(ctx, pool, opts)
			}
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"max_size":   res.MaxSize,
				"sets":       len(res.Sets),
				"conclusive": res.Conclusive,
				"elapsed":    time.Since(start).Round(time.Millisecond),
			}).Info("search finished")

			if err := emitResult(res, jsonOut, outPath); err != nil {
				return err
			}
			if !res.Conclusive {
				os.Exit(exitInconclusive)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&maxArity, "max-arity", 2, "largest connective arity admitted to the pool")
	cmd.Flags().BoolVar(&incremental, "incremental", false, "admit one arity class at a time instead of the full pool")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "largest set size to try (0 means the pool size)")
	cmd.Flags().DurationVar(&deadline, "deadline", 0, "overall wall-clock limit for the search (0 means none)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "also write the JSON report to a file")
	return cmd
}
