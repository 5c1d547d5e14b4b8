//go:build integration

package xmledit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/aster/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveElement_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.xml")
	original := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n" +
		"<resources>\r\n" +
		"    <string name=\"keep\">Keep\tme</string>\r\n" +
		"    <string name=\"drop\">\r\n" +
		"        Drop me\r\n" +
		"    </string>\r\n" +
		"    <string   name=\"odd_spacing\" >x</string>\r\n" +
		"</resources>"
	require.NoError(t, os.WriteFile(path, []byte(original), 0600))

	editor := NewEditor(fs.NewFS())

	removed, err := editor.RemoveElement(path, ForLocalName("string").Attr("name", "missing"))
	require.NoError(t, err)
	assert.False(t, removed)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content), "file must stay byte for byte identical")

	removed, err = editor.RemoveElement(path, ForLocalName("string").Attr("name", "drop"))
	require.NoError(t, err)
	assert.True(t, removed)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n"+
		"<resources>\r\n"+
		"    <string name=\"keep\">Keep\tme</string>\r\n"+
		"    <string   name=\"odd_spacing\" >x</string>\r\n"+
		"</resources>", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRemoveElement_OneCallPerElement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.xml")
	require.NoError(t, os.WriteFile(path, []byte(diskLines(
		`<resources>`,
		`  <string name="dup">1</string>`,
		`  <string name="dup">2</string>`,
		`</resources>`,
	)), 0644))

	editor := NewEditor(fs.NewFS())
	matcher := ForLocalName("string").Attr("name", "dup")

	for _, expected := range []bool{true, true, false} {
		removed, err := editor.RemoveElement(path, matcher)
		require.NoError(t, err)
		assert.Equal(t, expected, removed)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, diskLines(`<resources>`, `</resources>`), string(content))
}

func diskLines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
