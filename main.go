// Command nicesets explores nice sets of Boolean connectives: sets that are
// functionally complete while no member is definable from the others.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes: 0 on a conclusive positive answer, 1 on a conclusive negative
// answer or usage error, 2 when the engine could not reach a conclusion.
const (
	exitOK           = 0
	exitFail         = 1
	exitInconclusive = 2
)

var (
	log     = logrus.New()
	verbose bool
	quiet   bool
)

func main() {
	root := &cobra.Command{
		Use:           "nicesets",
		Short:         "search for maximal complete and independent sets of Boolean connectives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			switch {
			case quiet:
				log.SetLevel(logrus.ErrorLevel)
			case verbose:
				log.SetLevel(logrus.DebugLevel)
			default:
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(searchCmd(), validateCmd(), proveCmd(), benchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitFail)
	}
}
