package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if !force {
			fmt.Printf("This deletes all progress in %s.\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		if err := removeDatabase(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No database found. Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Progress deleted.")
		return nil
	},
}

// removeDatabase deletes the database file along with the -wal/-shm
// sidecar files SQLite leaves next to it in WAL mode.
func removeDatabase(dbPath string) error {
	if err := os.Remove(dbPath); err != nil {
		return err
	}
	// Best effort; the sidecars only exist after a WAL-mode open.
	_ = os.Remove(dbPath + "-wal")
	_ = os.Remove(dbPath + "-shm")
	return nil
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip confirmation")
}
