package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hangman_words.json", filepath.Base(cfg.WordsFile))
	assert.Equal(t, "quiz_data.json", filepath.Base(cfg.QuizFile))
	assert.True(t, filepath.IsAbs(cfg.WordsFile))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, time.Second, cfg.FeedbackDelay)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.yaml")

	t.Setenv("GAMES_WORDS_FILE", words)
	t.Setenv("GAMES_LOG_LEVEL", "debug")
	t.Setenv("GAMES_JSON_LOGS", "true")
	t.Setenv("GAMES_QUIZ_FEEDBACK_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, words, cfg.WordsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, 250*time.Millisecond, cfg.FeedbackDelay)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GAMES_QUIZ_FEEDBACK_DELAY", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("GAMES_QUIZ_FEEDBACK_DELAY", "-1s")
	_, err = Load()
	assert.Error(t, err)
}

func TestResolvePathKeepsAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "quiz.json")
	assert.Equal(t, abs, ResolvePath(abs))
	assert.Equal(t, "", ResolvePath(""))
}
