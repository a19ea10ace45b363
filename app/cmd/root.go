package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timeprof",
	Short: "Elapsed-time profiler dataset toolkit",
	Long: `timeprof works with line-chart dataset (.js) files written by the profiler
library. It can view summary statistics, merge datasets for side-by-side
plotting, generate JSON reports, and pack/unpack CBOR archives of runs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
