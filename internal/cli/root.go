package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catfeed",
	Short: "catfeed calculates daily calories and portions for cats",
	Long:  "catfeed computes resting and daily energy requirements, serving sizes and looks up cat food calories from the terminal.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
