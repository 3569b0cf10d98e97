package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "git-smart-checkout",
	Short: "Interactive git branch picker",
	Long: `git-smart-checkout is an interactive branch picker for the terminal.

It shows local and remote branches ordered by commit recency, lets you
check out, create, rename and delete branches, and keeps the list fresh
with a periodic background sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Write a debug log")

	rootCmd.SetVersionTemplate(fmt.Sprintf("git-smart-checkout version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.AddCommand(
		newStatusCmd(),
		newListCmd(),
		newConfigCmd(),
	)
}
