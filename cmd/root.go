package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute assembles the command tree and runs it. It is the single entry
// point called from main.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "fleetsim",
		Short: "Deterministic logistics fleet simulator",
		Long: `fleetsim runs a discrete-time simulation of a truck fleet moving
cargo between producing depots and demanding customers.

Two modes are available:

  run    execute a fixed number of ticks and print a report
  serve  expose the simulation over HTTP, advancing one tick per second

The same seed always produces the same run.`,
	}

	rootCmd.AddCommand(RunCmd())
	rootCmd.AddCommand(ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
