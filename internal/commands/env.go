package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/stmt/internal/config"
	"github.com/cleared-dev/stmt/internal/logging"
	"github.com/cleared-dev/stmt/internal/runlog"
)

// env is what every pipeline command needs before it starts.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

func loadEnv(configPath string) (*env, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

// pick returns the i-th positional argument, or fallback when absent.
func pick(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

// saveRunLog appends the run's entries to the configured run log. An empty
// path disables the log.
func (e *env) saveRunLog(rec *runlog.Recorder) error {
	if e.cfg.Paths.RunLog == "" {
		return nil
	}
	if err := runlog.Append(e.cfg.Paths.RunLog, rec.Entries()); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	return nil
}
