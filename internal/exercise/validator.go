package exercise

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	controlIDPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
			_, ok := playground.ParseTopicID(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("control_id", func(fl validator.FieldLevel) bool {
			return controlIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the document schema and then replays the settings on a scratch copy of
// the exercise topic, so unknown controls and rejected values surface before anything is
// applied. All problems are reported together.
func Validate(ex *Exercise) error {
	if ex == nil {
		return pgerrors.NewValidationError("exercise", "exercise is nil", nil)
	}

	if err := validatorInstance().Struct(ex); err != nil {
		return convertValidationError(err)
	}

	scratch, _ := playground.NewTopic(ex.TopicID())
	var errs error
	for i, setting := range ex.Settings {
		control, ok := playground.FindControl(scratch, setting.Control)
		switch {
		case !ok:
			errs = multierr.Append(errs, pgerrors.NewValidationError(fieldForSetting(i, "control"),
				fmt.Sprintf("unknown control %q for topic %s", setting.Control, ex.Topic), nil))
		case control.Disabled:
			errs = multierr.Append(errs, pgerrors.NewValidationError(fieldForSetting(i, "value"),
				fmt.Sprintf("%s is disabled: %s", setting.Control, control.Hint), nil))
		case control.Kind != playground.KindAction && strings.TrimSpace(setting.Value) == "":
			errs = multierr.Append(errs, pgerrors.NewValidationError(fieldForSetting(i, "value"),
				fmt.Sprintf("value is required for %s", setting.Control), nil))
		default:
			if err := control.Apply(setting.Value); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", fieldForSetting(i, "value"), err))
			}
		}
	}
	return errs
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		var errs error
		for _, fe := range ves {
			field := yamlishFieldName(fe)
			msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
			errs = multierr.Append(errs, pgerrors.NewValidationError(field, msg, fe))
		}
		return errs
	}

	return pgerrors.NewValidationError("exercise", err.Error(), err)
}

// yamlishFieldName turns "Exercise.Settings[0].Control" into "settings[0].control".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForSetting(index int, field string) string {
	return fmt.Sprintf("settings[%d].%s", index, field)
}
