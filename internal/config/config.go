package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "GAMES"

// Config holds the runtime settings, read from GAMES_* environment variables.
type Config struct {
	WordsFile     string        `envconfig:"WORDS_FILE" default:"hangman_words.json"`
	QuizFile      string        `envconfig:"QUIZ_FILE" default:"quiz_data.json"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	JSONLogs      bool          `envconfig:"JSON_LOGS" default:"false"`
	FeedbackDelay time.Duration `envconfig:"QUIZ_FEEDBACK_DELAY" default:"1s"`
}

// Load reads the configuration from the environment and resolves data file paths.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config from env: %w", err)
	}

	if cfg.FeedbackDelay < 0 {
		return nil, fmt.Errorf("quiz feedback delay must not be negative, got %s", cfg.FeedbackDelay)
	}

	cfg.WordsFile = ResolvePath(cfg.WordsFile)
	cfg.QuizFile = ResolvePath(cfg.QuizFile)

	return &cfg, nil
}

// ResolvePath makes a relative data path absolute. A file next to the executable
// wins over one in the working directory.
func ResolvePath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}
