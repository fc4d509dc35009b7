package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boolcomb/nicesets/post"
	"github.com/boolcomb/nicesets/search"
)

func validateCmd() *cobra.Command {
	var flags engineFlags
	cmd := &cobra.Command{
		Use:   "validate CONNECTIVE...",
		Short: "check whether a named set of connectives is nice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			set, err := parseConnectives(args)
			if err != nil {
				return err
			}
			verdict, err := search.Validate(cmd.Context(), set, opts)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", search.NiceSet(set), verdict)
			if missing := post.Missing(set); missing != 0 {
				fmt.Printf("incomplete: every member stays inside %s\n", missing)
			}
			switch verdict {
			case search.NotNice:
				os.Exit(exitFail)
			case search.Unknown:
				os.Exit(exitInconclusive)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
