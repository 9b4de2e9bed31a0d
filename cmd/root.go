package cmd

import (
	"github.com/spf13/cobra"

	"vocadrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocadrill",
	Short: "Daily vocabulary trainer for the terminal",
	Long:  "VocaDrill — terminal trainer that drills ten advanced English words a day through recognition, spelling, and quiz rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCADRILL_DB env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VOCADRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
