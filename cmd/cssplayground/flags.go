package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/cssplayground/internal/logger"
	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

func validateLogFormat(format string) error {
	if _, err := logger.ParseFormat(format); err != nil {
		return pgerrors.NewValidationError("log-format", fmt.Sprintf("%q must be %s or %s", format, logFormatConsole, logFormatJSON), err)
	}
	return nil
}

func newLogger(flags *rootFlags, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	format, err := logger.ParseFormat(flags.logFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Level: level, Format: format, Writer: w})
}

func validateExercisePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve exercise path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("exercise file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("exercise path %s is a directory", abs)
	}

	return nil
}

func parseTopic(raw string) (playground.TopicID, error) {
	id, ok := playground.ParseTopicID(raw)
	if !ok {
		ids := make([]string, 0, len(playground.TopicIDs()))
		for _, id := range playground.TopicIDs() {
			ids = append(ids, string(id))
		}
		return "", pgerrors.NewValidationError("topic", fmt.Sprintf("unknown topic %q (want one of %s)", raw, strings.Join(ids, ", ")), nil)
	}
	return id, nil
}

// setting is one --set id=value pair.
type setting struct {
	control string
	value   string
}

func parseSettings(raw []string) ([]setting, error) {
	settings := make([]setting, 0, len(raw))
	for _, pair := range raw {
		id, value, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, pgerrors.NewValidationError("set", fmt.Sprintf("%q is not in id=value form", pair), nil)
		}
		settings = append(settings, setting{control: id, value: value})
	}
	return settings, nil
}
