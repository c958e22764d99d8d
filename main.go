package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/die-net/socksd/internal/log"
)

func main() {
	err := newRootCmd().Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "socksd",
		Short:         "Inspect socksd configuration and destination address types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetDebug(verbose)
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newClassifyCmd(), newConfigCmd())
	return root
}
