// Package data reads the word list and quiz questions from disk. Loader methods
// never fail: they log the cause and hand back the value each game treats as
// "nothing to play".
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"games-collection/internal/games"
	"games-collection/internal/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound   = errors.New("data file not found")
	ErrWrongShape = errors.New("data file has unexpected shape")
)

var validate = validator.New()

type Loader struct {
	wordsPath string
	quizPath  string
	logger    logger.Logger
}

func NewLoader(wordsPath, quizPath string, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{
		wordsPath: wordsPath,
		quizPath:  quizPath,
		logger:    log,
	}
}

// Words returns the lower-cased word list, or the single-entry sentinel list on any failure.
func (l *Loader) Words() []string {
	words, err := ReadWords(l.wordsPath)
	if err != nil {
		l.logger.Error("Loader", err, map[string]interface{}{
			"file": l.wordsPath,
		})
		return []string{games.WordListSentinel}
	}

	l.logger.Debug("Loader", "word list loaded", map[string]interface{}{
		"file":  l.wordsPath,
		"count": len(words),
	})
	return words
}

// Questions returns the quiz records, or an empty slice on any failure.
func (l *Loader) Questions() []games.Question {
	questions, err := ReadQuestions(l.quizPath)
	if err != nil {
		l.logger.Error("Loader", err, map[string]interface{}{
			"file": l.quizPath,
		})
		return []games.Question{}
	}

	l.logger.Debug("Loader", "quiz loaded", map[string]interface{}{
		"file":  l.quizPath,
		"count": len(questions),
	})
	return questions
}

// ReadWords decodes a flat sequence of strings and lower-cases every entry.
func ReadWords(path string) ([]string, error) {
	var raw []interface{}
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: no word list: %w", path, ErrWrongShape)
	}

	words := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s: entry %d is %T, not a string: %w", path, i, item, ErrWrongShape)
		}
		words = append(words, strings.ToLower(s))
	}
	return words, nil
}

// ReadQuestions decodes a sequence of {question, answer} records. Every record needs both fields.
func ReadQuestions(path string) ([]games.Question, error) {
	var questions []games.Question
	if err := decodeFile(path, &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		return nil, fmt.Errorf("%s: no question list: %w", path, ErrWrongShape)
	}
	for i := range questions {
		if err := validate.Struct(questions[i]); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i, errors.Join(ErrWrongShape, err))
		}
	}
	return questions, nil
}

func decodeFile(path string, v interface{}) error {
	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to decode YAML from %s: %w", path, errors.Join(ErrWrongShape, err))
		}
	default:
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to decode JSON from %s: %w", path, errors.Join(ErrWrongShape, err))
		}
	}
	return nil
}
