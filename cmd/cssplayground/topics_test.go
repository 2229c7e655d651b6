package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopicsCommand_ListsEveryTopic(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "topics")
	require.NoError(t, err)
	for _, want := range []string{"box-model", "flexbox", "grid", "positioning", "z-index", "transform"} {
		require.Contains(t, out, want)
	}
	require.Contains(t, out, "CONTROL")
}

func TestTopicsCommand_SingleTopic(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "topics", "transform")
	require.NoError(t, err)
	require.Contains(t, out, "Transform & Animation")
	require.Contains(t, out, "0.5..2.5 step 0.1")
	require.Contains(t, out, "spin | pulse | bounce | shake")
	require.NotContains(t, out, "box-model")
}

func TestTopicsCommand_UnknownTopic(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "topics", "colors")
	require.ErrorContains(t, err, `unknown topic "colors"`)
}
