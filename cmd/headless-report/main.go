package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "headless-report",
		Short:         "Run matches, seasons and tournaments without a window and print reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(matchesCmd(), seasonCmd(), tournamentCmd(), classifyCmd())
	return root
}
