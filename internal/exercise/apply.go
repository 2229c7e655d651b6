package exercise

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

// Apply replays the settings, in order, on the exercise topic of the session and returns
// that topic. Every rejected setting is reported; accepted ones stay applied.
func (e *Exercise) Apply(s *playground.Session) (playground.Topic, error) {
	topic, ok := s.Topic(e.TopicID())
	if !ok {
		return nil, pgerrors.NewValidationError("topic", fmt.Sprintf("unknown topic %q", e.Topic), nil)
	}
	return topic, e.ApplyTo(topic)
}

// ApplyTo replays the settings on topic, which must be the exercise topic.
func (e *Exercise) ApplyTo(topic playground.Topic) error {
	if got := topic.Info().ID; got != e.TopicID() {
		return pgerrors.NewValidationError("topic", fmt.Sprintf("exercise %q is for %s, not %s", e.Name, e.Topic, got), nil)
	}

	var errs error
	for i, setting := range e.Settings {
		if _, ok := playground.FindControl(topic, setting.Control); !ok {
			errs = multierr.Append(errs, pgerrors.NewValidationError(fieldForSetting(i, "control"),
				fmt.Sprintf("unknown control %q for topic %s", setting.Control, e.Topic), nil))
			continue
		}
		if err := playground.Apply(topic, setting.Control, setting.Value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fieldForSetting(i, "value"), err))
		}
	}
	return errs
}
