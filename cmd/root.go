package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "adaptutor",
	Short: "Adaptive quiz tutor for the terminal",
	Long:  "Adaptutor runs open-answer quiz sessions and steers difficulty with a trained decision-tree model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to question bank CSV (overrides ADAPTUTOR_BANK)")
	rootCmd.PersistentFlags().String("model", "", "Path to difficulty model JSON (overrides ADAPTUTOR_MODEL)")
	rootCmd.PersistentFlags().String("progress", "", "Path to progress log CSV (overrides ADAPTUTOR_PROGRESS)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides ADAPTUTOR_DB)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Question sampling seed; 0 picks a fresh seed per session")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment configuration and lets flags
// override it. --seed is only applied when set, so --seed 0 still
// means time-derived.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		cfg.ModelPath = p
	}
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		cfg.ProgressPath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	return cfg, nil
}
