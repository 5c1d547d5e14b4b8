package xmledit

import "encoding/xml"

// ElementMatcher selects elements by local name and required attribute values.
// It only inspects the tag being tested, never its content or ancestors.
type ElementMatcher struct {
	localName string
	attrs     map[string]string
}

// ForLocalName creates a matcher for elements with the given local name.
func ForLocalName(localName string) *ElementMatcher {
	return &ElementMatcher{
		localName: localName,
		attrs:     make(map[string]string),
	}
}

// Attr requires an attribute with the given local name to hold value.
// It returns the matcher for chaining.
func (m *ElementMatcher) Attr(localName, value string) *ElementMatcher {
	m.attrs[localName] = value
	return m
}

// Matches reports whether the start tag satisfies the matcher.
// Attributes the matcher does not name are ignored.
func (m *ElementMatcher) Matches(el xml.StartElement) bool {
	if el.Name.Local != m.localName {
		return false
	}

	for name, value := range m.attrs {
		if !hasAttr(el.Attr, name, value) {
			return false
		}
	}

	return true
}

// String returns a selector-like representation of the matcher.
func (m *ElementMatcher) String() string {
	s := m.localName
	for name, value := range m.attrs {
		s += "[" + name + "=" + value + "]"
	}
	return s
}

func hasAttr(attrs []xml.Attr, localName, value string) bool {
	for _, attr := range attrs {
		if attr.Name.Local == localName && attr.Value == value {
			return true
		}
	}
	return false
}
