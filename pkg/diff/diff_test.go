package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStylesheets_IdenticalContent(t *testing.T) {
	t.Parallel()

	css := ".container {\n  display: flex;\n}"
	require.Empty(t, Stylesheets(css, css, "default", "current"))
}

func TestStylesheets_SingleDeclarationChange(t *testing.T) {
	t.Parallel()

	before := ".container {\n  display: flex;\n  flex-direction: row;\n}"
	after := ".container {\n  display: flex;\n  flex-direction: column;\n}"

	result := Stylesheets(before, after, "default", "current")

	require.True(t, strings.HasPrefix(result, "--- default\n+++ current\n"))
	require.Contains(t, result, "@@ -1,4 +1,4 @@")
	require.Contains(t, result, "-  flex-direction: row;\n")
	require.Contains(t, result, "+  flex-direction: column;\n")
	require.Contains(t, result, "   display: flex;\n")
}

func TestStylesheets_AddedLines(t *testing.T) {
	t.Parallel()

	before := ".element {\n  position: relative;\n}"
	after := ".element {\n  position: relative;\n  top: 10px;\n}"

	result := Stylesheets(before, after, "a", "b")
	require.Contains(t, result, "+  top: 10px;\n")
	require.NotContains(t, result, "-  position: relative;")
}

func TestChanged(t *testing.T) {
	t.Parallel()

	t.Run("identical texts have no changes", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, Changed("a\nb", "a\nb"))
	})

	t.Run("reports inserted and replaced lines", func(t *testing.T) {
		t.Parallel()
		before := ".element {\n  width: 100px;\n  height: 100px;\n}"
		after := ".element {\n  width: 120px;\n  height: 100px;\n}"
		require.Equal(t, []string{"  width: 120px;"}, Changed(before, after))
	})
}
