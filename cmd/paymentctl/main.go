package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "paymentctl",
		Short:         "Operate the JobLight payment backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print command results")

	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(reconcileCmd(opts))
	rootCmd.AddCommand(expireCmd(opts))
	rootCmd.AddCommand(providersCmd(opts))
	rootCmd.AddCommand(loadTestCmd())
	return rootCmd
}
