package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/cssplayground/internal/exercise"
	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	"github.com/alexisbeaulieu97/cssplayground/internal/stylesheet"
	"github.com/alexisbeaulieu97/cssplayground/pkg/diff"
	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type cssOptions struct {
	sets     []string
	exercise string
	format   string
	diff     bool
	preview  bool
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css [TOPIC]",
		Short: "Print the stylesheet a topic produces",
		Long: `Print the stylesheet a topic produces. Controls start at their defaults, then the
exercise (if any) and each --set are applied in order.`,
		Example: `  cssplayground css flexbox --set justify-content=center --set align-items=center
  cssplayground css box-model --set border-radius=12 --diff
  cssplayground css --exercise examples/exercises/spin.yaml --preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			topicArg := ""
			if len(args) == 1 {
				topicArg = args[0]
			}

			out, err := buildCSS(topicArg, opts)
			if err != nil {
				log.Error(err, "css command failed")
				return err
			}
			log.WithTopic(string(out.Topic)).WithFields(map[string]any{"settings": len(opts.sets)}).Debug("stylesheet generated")

			if opts.format == formatJSON {
				return renderCSSJSON(cmd.OutOrStdout(), out)
			}
			return renderCSSText(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "Apply a control value as id=value (repeatable)")
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Exercise file to start from")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format (text or json)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show a unified diff against the topic defaults")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Show the live preview regions")

	return cmd
}

type cssOutput struct {
	Topic      playground.TopicID `json:"topic"`
	Stylesheet string             `json:"stylesheet"`
	Rules      []stylesheet.Rule  `json:"rules"`
	Diff       string             `json:"diff,omitempty"`
	Changed    []string           `json:"changed,omitempty"`
	Preview    string             `json:"preview,omitempty"`
}

func buildCSS(topicArg string, opts cssOptions) (cssOutput, error) {
	if opts.format != formatText && opts.format != formatJSON {
		return cssOutput{}, pgerrors.NewValidationError("format", fmt.Sprintf("%q must be %s or %s", opts.format, formatText, formatJSON), nil)
	}
	settings, err := parseSettings(opts.sets)
	if err != nil {
		return cssOutput{}, err
	}

	session := playground.NewSession()
	var topic playground.Topic
	if topicArg != "" {
		id, err := parseTopic(topicArg)
		if err != nil {
			return cssOutput{}, err
		}
		topic, _ = session.Topic(id)
	}

	if opts.exercise != "" {
		if err := validateExercisePath(opts.exercise); err != nil {
			return cssOutput{}, err
		}
		ex, err := exercise.Load(opts.exercise)
		if err != nil {
			return cssOutput{}, err
		}
		if topic == nil {
			topic, _ = session.Topic(ex.TopicID())
		}
		if err := ex.ApplyTo(topic); err != nil {
			return cssOutput{}, err
		}
	}

	if topic == nil {
		return cssOutput{}, pgerrors.NewValidationError("topic", "name a topic or pass --exercise", nil)
	}

	var errs error
	for _, s := range settings {
		errs = multierr.Append(errs, playground.Apply(topic, s.control, s.value))
	}
	if errs != nil {
		return cssOutput{}, errs
	}

	id := topic.Info().ID
	text := topic.Stylesheet()
	sheet, err := stylesheet.Parse(text)
	if err != nil {
		return cssOutput{}, err
	}

	out := cssOutput{Topic: id, Stylesheet: text, Rules: sheet.Rules}
	if opts.diff {
		defaults, _ := playground.NewTopic(id)
		out.Diff = diff.Stylesheets(defaults.Stylesheet(), text, "default", "current")
		out.Changed = diff.Changed(defaults.Stylesheet(), text)
	}
	if opts.preview {
		out.Preview = topic.Preview().Tree()
	}
	return out, nil
}

func renderCSSText(w io.Writer, out cssOutput) error {
	if _, err := fmt.Fprintln(w, out.Stylesheet); err != nil {
		return err
	}
	if out.Diff != "" {
		if _, err := fmt.Fprintf(w, "\n%s", out.Diff); err != nil {
			return err
		}
	}
	if out.Preview != "" {
		if _, err := fmt.Fprintf(w, "\n%s", out.Preview); err != nil {
			return err
		}
	}
	return nil
}

func renderCSSJSON(w io.Writer, out cssOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
