// Package exercise loads prepared starting states for the playground. An exercise names a
// topic and the control inputs to replay on it.
package exercise

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

// Exercise is a read-only exercise document.
type Exercise struct {
	Name        string    `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Topic       string    `yaml:"topic" toml:"topic" validate:"required,topic"`
	Description string    `yaml:"description,omitempty" toml:"description,omitempty"`
	Settings    []Setting `yaml:"settings,omitempty" toml:"settings,omitempty" validate:"omitempty,dive"`
}

// Setting is one control input. Value is the raw text the control would receive; actions
// ignore it and may leave it empty.
type Setting struct {
	Control string `yaml:"control" toml:"control" validate:"required,control_id"`
	Value   string `yaml:"value,omitempty" toml:"value,omitempty"`
}

// TopicID returns the validated topic id.
func (e *Exercise) TopicID() playground.TopicID {
	id, _ := playground.ParseTopicID(e.Topic)
	return id
}

// tomlExercise mirrors Exercise for TOML, where a value may be written as a bare number or
// boolean.
type tomlExercise struct {
	Name        string        `toml:"name"`
	Topic       string        `toml:"topic"`
	Description string        `toml:"description"`
	Settings    []tomlSetting `toml:"settings"`
}

type tomlSetting struct {
	Control string `toml:"control"`
	Value   any    `toml:"value"`
}

func (t tomlExercise) exercise() Exercise {
	ex := Exercise{Name: t.Name, Topic: t.Topic, Description: t.Description}
	for _, s := range t.Settings {
		ex.Settings = append(ex.Settings, Setting{Control: s.Control, Value: scalarText(s.Value)})
	}
	return ex
}

func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
