package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/pool"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate and summarize the question bank",
	Long: `Load the question bank CSV and report what survived cleaning.

Rows with a blank answer or an unparseable level label are dropped on
load; the counts here show exactly what quiz sessions will draw from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		p, err := pool.LoadFile(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load question bank %s: %w", cfg.BankPath, err)
		}

		fmt.Printf("Bank: %s\n", cfg.BankPath)
		fmt.Printf("Questions: %d\n", p.Size())
		fmt.Printf("Levels: %d    Topics: %d\n\n", len(p.Levels()), len(p.Topics()))

		// Per-topic rows, one column per level.
		fmt.Printf("%-24s", "")
		for _, level := range p.Levels() {
			fmt.Printf("%12s", level)
		}
		fmt.Println()
		for _, topic := range p.Topics() {
			fmt.Printf("%-24s", topic)
			for _, level := range p.Levels() {
				fmt.Printf("%12d", p.Count(topic, level))
			}
			fmt.Println()
		}
		return nil
	},
}
