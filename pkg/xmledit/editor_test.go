//go:build unit

package xmledit

import (
	"encoding/xml"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	fsmocks "github.com/lerenn/aster/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestElementMatcher_Matches(t *testing.T) {
	el := func(local string, attrs ...xml.Attr) xml.StartElement {
		return xml.StartElement{Name: xml.Name{Local: local}, Attr: attrs}
	}
	attr := func(space, local, value string) xml.Attr {
		return xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value}
	}

	m := ForLocalName("string").Attr("name", "app_name")

	assert.True(t, m.Matches(el("string", attr("", "name", "app_name"))))
	assert.True(t, m.Matches(el("string", attr("", "translatable", "false"), attr("", "name", "app_name"))))
	assert.True(t, m.Matches(el("string", attr("http://schemas.android.com/apk/res/android", "name", "app_name"))))
	assert.False(t, m.Matches(el("string", attr("", "name", "other"))))
	assert.False(t, m.Matches(el("string")), "a required attribute must be present")
	assert.False(t, m.Matches(el("plurals", attr("", "name", "app_name"))))

	assert.True(t, ForLocalName("string").Matches(el("string")))
	assert.Equal(t, "string[name=app_name]", m.String())
}

func TestFindElement(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		matcher  *ElementMatcher
		expected *ElementLocation
	}{
		{
			name: "single line element with nested child",
			content: lines(
				`<resources>`,
				`<string name="a">x<nested/></string>`,
				`<string name="b">y</string>`,
				`</resources>`,
			),
			matcher:  ForLocalName("string").Attr("name", "a"),
			expected: &ElementLocation{StartLine: 2, EndLine: 2},
		},
		{
			name: "element spanning several lines",
			content: lines(
				`<?xml version="1.0" encoding="utf-8"?>`,
				`<resources>`,
				`    <string name="a">one</string>`,
				`    <string`,
				`        name="b">`,
				`        two`,
				`    </string>`,
				`    <string name="c">three</string>`,
				`</resources>`,
			),
			matcher:  ForLocalName("string").Attr("name", "b"),
			expected: &ElementLocation{StartLine: 4, EndLine: 7},
		},
		{
			name: "deeply nested elements of the same name",
			content: lines(
				`<root>`,
				`  <node id="x">`,
				`    <node>`,
				`      <node>`,
				`        <node/>`,
				`      </node>`,
				`    </node>`,
				`  </node>`,
				`  <node id="y"/>`,
				`</root>`,
			),
			matcher:  ForLocalName("node").Attr("id", "x"),
			expected: &ElementLocation{StartLine: 2, EndLine: 8},
		},
		{
			name: "self closing element after a nested subtree",
			content: lines(
				`<root>`,
				`  <node id="x">`,
				`    <node><node/></node>`,
				`  </node>`,
				`  <node id="y"/>`,
				`</root>`,
			),
			matcher:  ForLocalName("node").Attr("id", "y"),
			expected: &ElementLocation{StartLine: 5, EndLine: 5},
		},
		{
			name: "match nested in a non matching subtree",
			content: lines(
				`<resources>`,
				`  <group><string name="a"/></group>`,
				`  <string name="b">`,
				`    <string name="inner"/>`,
				`  </string>`,
				`</resources>`,
			),
			matcher:  ForLocalName("string").Attr("name", "b"),
			expected: &ElementLocation{StartLine: 3, EndLine: 5},
		},
		{
			name: "first match wins",
			content: lines(
				`<resources>`,
				`  <string name="dup">1</string>`,
				`  <string name="dup">2</string>`,
				`</resources>`,
			),
			matcher:  ForLocalName("string").Attr("name", "dup"),
			expected: &ElementLocation{StartLine: 2, EndLine: 2},
		},
		{
			name: "comments and cdata before the match",
			content: lines(
				`<resources>`,
				`  <!-- a comment`,
				`       on two lines -->`,
				`  <string name="html"><![CDATA[<b>`,
				`bold</b>]]></string>`,
				`</resources>`,
			),
			matcher:  ForLocalName("string").Attr("name", "html"),
			expected: &ElementLocation{StartLine: 4, EndLine: 5},
		},
		{
			name: "no match",
			content: lines(
				`<resources>`,
				`  <string name="a">x</string>`,
				`</resources>`,
			),
			matcher: ForLocalName("string").Attr("name", "zzz"),
		},
	}

	editor := NewEditor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := editor.FindElement([]byte(tt.content), tt.matcher)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, location)
		})
	}
}

func TestFindElement_Malformed(t *testing.T) {
	_, err := NewEditor(nil).FindElement([]byte("<resources><string name=\"a\">"), ForLocalName("string").Attr("name", "b"))
	assert.ErrorIs(t, err, ErrMalformedXML)
}

func TestExcise(t *testing.T) {
	content := []byte("<resources>\r\n  <string name=\"a\">x</string>\r\n  <string name=\"b\">y</string>\r\n</resources>")

	out := excise(content, &ElementLocation{StartLine: 2, EndLine: 2})
	assert.Equal(t, "<resources>\r\n  <string name=\"b\">y</string>\r\n</resources>", string(out))

	out = excise(content, &ElementLocation{StartLine: 4, EndLine: 4})
	assert.Equal(t, "<resources>\r\n  <string name=\"a\">x</string>\r\n  <string name=\"b\">y</string>\r\n", string(out))
}

type fakeFileInfo struct {
	mode os.FileMode
}

func (f fakeFileInfo) Name() string       { return "strings.xml" }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func TestRemoveElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	content := lines(
		`<resources>`,
		`<string name="a">x<nested/></string>`,
		`<string name="b">y</string>`,
		`</resources>`,
	)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Stat("strings.xml").Return(fakeFileInfo{mode: 0640}, nil)
	mockFS.EXPECT().ReadFile("strings.xml").Return([]byte(content), nil)
	mockFS.EXPECT().WriteFileAtomic("strings.xml", []byte(lines(
		`<resources>`,
		`<string name="b">y</string>`,
		`</resources>`,
	)), os.FileMode(0640)).Return(nil)

	removed, err := NewEditor(mockFS).RemoveElement("strings.xml", ForLocalName("string").Attr("name", "a"))
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRemoveElement_NoMatchLeavesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Stat("strings.xml").Return(fakeFileInfo{mode: 0644}, nil)
	mockFS.EXPECT().ReadFile("strings.xml").Return([]byte(`<resources><string name="a"/></resources>`), nil)
	// No WriteFileAtomic expected

	removed, err := NewEditor(mockFS).RemoveElement("strings.xml", ForLocalName("string").Attr("name", "b"))
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveElement_Errors(t *testing.T) {
	matcher := ForLocalName("string").Attr("name", "a")

	t.Run("unreadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := fsmocks.NewMockFS(ctrl)
		mockFS.EXPECT().Stat("strings.xml").Return(nil, os.ErrNotExist)

		_, err := NewEditor(mockFS).RemoveElement("strings.xml", matcher)
		assert.ErrorIs(t, err, ErrReadFile)
		assert.Contains(t, err.Error(), "strings.xml")
	})

	t.Run("malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := fsmocks.NewMockFS(ctrl)
		mockFS.EXPECT().Stat("strings.xml").Return(fakeFileInfo{mode: 0644}, nil)
		mockFS.EXPECT().ReadFile("strings.xml").Return([]byte(`<resources>`), nil)

		_, err := NewEditor(mockFS).RemoveElement("strings.xml", matcher)
		assert.ErrorIs(t, err, ErrMalformedXML)
		assert.Contains(t, err.Error(), "strings.xml")
	})

	t.Run("unwritable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFS := fsmocks.NewMockFS(ctrl)
		mockFS.EXPECT().Stat("strings.xml").Return(fakeFileInfo{mode: 0644}, nil)
		mockFS.EXPECT().ReadFile("strings.xml").Return([]byte(`<resources><string name="a"/></resources>`), nil)
		mockFS.EXPECT().WriteFileAtomic("strings.xml", gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

		_, err := NewEditor(mockFS).RemoveElement("strings.xml", matcher)
		assert.ErrorIs(t, err, ErrWriteFile)
	})
}
