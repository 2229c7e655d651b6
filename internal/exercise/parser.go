package exercise

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads an exercise file from disk, decodes it according to its extension and validates it.
func Load(path string) (*Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pgerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as YAML (.yaml, .yml) or TOML (.toml) based on the extension of name.
func Parse(name string, data []byte) (*Exercise, error) {
	var ex Exercise

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ex); err != nil {
			return nil, pgerrors.NewParseError(name, extractLine(err), err)
		}
	case ".toml":
		var doc tomlExercise
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, pgerrors.NewParseError(name, tomlLine(err), err)
		}
		ex = doc.exercise()
	default:
		return nil, pgerrors.NewParseError(name, 0, fmt.Errorf("unsupported exercise format %q", ext))
	}

	if err := Validate(&ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
