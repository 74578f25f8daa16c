package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Println("This erases the progress log and the event database.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		if err := os.Remove(cfg.ProgressPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove progress log: %w", err)
		}

		st, err := store.Open(cfg.DBPath)
		if err == nil {
			defer st.Close()
			if err := st.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset event log: %w", err)
			}
		}

		fmt.Println("Progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
