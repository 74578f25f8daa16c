package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/analytics"
	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		history, err := progress.NewStore(cfg.ProgressPath).ReadAll()
		if errors.Is(err, progress.ErrNoHistory) {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read progress log: %w", err)
		}

		fmt.Printf("Sessions: %d\n\n", len(history))

		fmt.Println("Accuracy by topic:")
		accuracy := analytics.PerTopicAccuracy(history)
		topics := make([]string, 0, len(accuracy))
		for name := range accuracy {
			topics = append(topics, name)
		}
		sort.Strings(topics)
		for _, name := range topics {
			fmt.Printf("  %-24s %5.1f%%\n", name, accuracy[name])
		}

		if weak := analytics.WeakTopics(history); len(weak) > 0 {
			fmt.Printf("\nNeeds work: %s\n", strings.Join(weak, ", "))
		}

		printRecentSessions(cmd.Context(), cfg.DBPath)
		return nil
	},
}

// printRecentSessions reads the SQLite event log. It is best-effort:
// stats still work from the CSV alone.
func printRecentSessions(ctx context.Context, dbPath string) {
	st, err := store.Open(dbPath)
	if err != nil {
		return
	}
	defer st.Close()

	recent, err := st.RecentSessions(ctx, 10)
	if err != nil || len(recent) == 0 {
		return
	}

	fmt.Println("\nRecent sessions:")
	for _, rec := range recent {
		fmt.Printf("  %s  %-18s %-10s %d/%d\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Topic, rec.Level, rec.Score, rec.Questions)
	}
}
