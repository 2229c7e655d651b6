package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplayground/internal/exercise"
	"github.com/alexisbeaulieu97/cssplayground/internal/logger"
	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	"github.com/alexisbeaulieu97/cssplayground/internal/tui"
)

type playOptions struct {
	root     *rootFlags
	topic    string
	exercise string
	logFile  string
}

var playCmdRunner = runPlay

func newPlayCmd(root *rootFlags) *cobra.Command {
	opts := playOptions{root: root}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive playground",
		Long: `Open the interactive playground. Each topic has a control panel, a drawing of the
live preview and the stylesheet the controls produce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.topic, "topic", "t", "", "Topic to open first")
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Exercise file to start from")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the playground runs")

	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	if opts.root == nil {
		opts.root = &rootFlags{logFormat: logFormatConsole}
	}

	log := logger.Nop()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		log, err = newLogger(opts.root, f)
		if err != nil {
			return err
		}
	}

	session := playground.NewSession()
	log = log.WithSession(session.ID)
	model, err := newPlayModel(session, opts, log)
	if err != nil {
		return err
	}

	log.Info("playground started")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "playground failed")
		return fmt.Errorf("run playground: %w", err)
	}
	log.Info("playground closed")

	return nil
}

// newPlayModel prepares the session the playground opens with. An exercise decides the first
// topic unless --topic names one.
func newPlayModel(session *playground.Session, opts playOptions, log *logger.Logger) (tui.Model, error) {
	tuiOpts := tui.Options{Logger: log}

	if opts.exercise != "" {
		if err := validateExercisePath(opts.exercise); err != nil {
			return tui.Model{}, err
		}
		ex, err := exercise.Load(opts.exercise)
		if err != nil {
			return tui.Model{}, err
		}
		topic, err := ex.Apply(session)
		if err != nil {
			return tui.Model{}, err
		}
		tuiOpts.Topic = topic.Info().ID
		tuiOpts.Exercise = ex.Name
	}

	if opts.topic != "" {
		id, err := parseTopic(opts.topic)
		if err != nil {
			return tui.Model{}, err
		}
		tuiOpts.Topic = id
	}

	return tui.NewModel(session, tuiOpts), nil
}
