package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vocadrill/internal/store"
	"vocadrill/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		p, err := s.LedgerRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("Streak:         %d day(s)\n", p.Streak)
		fmt.Printf("Words learned:  %d\n", p.TotalWordsLearned)
		fmt.Printf("Days recorded:  %d\n", len(p.History))
		if p.LastLoginDate != "" {
			fmt.Printf("Last completed: %s\n", p.LastLoginDate)
		}

		if len(p.History) == 0 {
			fmt.Println("\nNo sessions recorded yet. Run vocadrill to start.")
			return nil
		}

		fmt.Println("\nRecent days")
		fmt.Println(strings.Repeat("─", 72))
		start := len(p.History) - 7
		if start < 0 {
			start = 0
		}
		for _, r := range p.History[start:] {
			status := "in progress"
			if r.Completed {
				status = "completed"
			}
			fmt.Printf("%s  %-11s  %s\n", r.Date, status, strings.Join(vocab.Texts(r.Words), ", "))
		}
		return nil
	},
}
