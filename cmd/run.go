package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/app"
	"github.com/abhisek/adaptutor/internal/logging"
	"github.com/abhisek/adaptutor/internal/pool"
	"github.com/abhisek/adaptutor/internal/predict"
	"github.com/abhisek/adaptutor/internal/progress"
	"github.com/abhisek/adaptutor/internal/quiz"
	"github.com/abhisek/adaptutor/internal/store"
)

// runApp builds the engine and its stores, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	p, err := pool.LoadFile(cfg.BankPath)
	if err != nil {
		return fmt.Errorf("load question bank %s: %w", cfg.BankPath, err)
	}

	opts := []quiz.Option{quiz.WithLogger(log)}

	// The model is optional. Without it sessions still run, just
	// without level recommendations.
	model, err := predict.LoadModel(cfg.ModelPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Difficulty model not loaded:", err)
		fmt.Fprintln(os.Stderr, "Level recommendations will be unavailable.")
		log.Warn("difficulty model not loaded",
			zap.String("path", cfg.ModelPath), zap.Error(err))
	} else {
		opts = append(opts, quiz.WithPredictor(predict.New(model, p)))
	}

	progressStore := progress.NewStore(cfg.ProgressPath)
	opts = append(opts, quiz.WithSummarySink(progressStore))

	if seed := cfg.Seed; seed != 0 {
		opts = append(opts, quiz.WithSeed(func() int64 { return seed }))
	} else {
		opts = append(opts, quiz.WithSeed(func() int64 { return time.Now().UnixNano() }))
	}

	engine := quiz.NewEngine(p, opts...)

	appOpts := app.Options{
		Engine:   engine,
		Progress: progressStore,
		Log:      log,
	}

	// The event log is also optional.
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Event log unavailable:", err)
		log.Warn("event log unavailable",
			zap.String("path", cfg.DBPath), zap.Error(err))
	} else {
		defer st.Close()
		appOpts.Events = st
	}

	return app.Run(appOpts)
}
