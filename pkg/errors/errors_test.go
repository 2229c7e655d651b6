package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("center.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "center.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: center.yaml:7: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.toml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.toml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("settings[1].value", `"diagonal" is not one of row, column`, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "settings[1].value", validationErr.Field)
	require.Contains(t, err.Error(), "settings[1].value")
	require.Contains(t, validationErr.Message, "diagonal")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("strconv.Atoi: parsing \"wide\": invalid syntax")
	err := NewValidationError("", "exercise is empty", underlying)
	require.Equal(t, "validation error: exercise is empty", err.Error())
	require.ErrorIs(t, err, underlying)
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	require.Empty(t, parseErr.Error())
	require.NoError(t, parseErr.Unwrap())

	var validationErr *ValidationError
	require.Empty(t, validationErr.Error())
	require.NoError(t, validationErr.Unwrap())
}
