// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"html"
	"strings"
)

// xmlEscaper escapes only the three characters MARCXML subfield/control
// text requires ('&', '<', '>'). html.EscapeString escapes quotes too,
// which would diverge from the slim-XML output byte for byte, so this
// stays hand-rolled rather than reusing the stdlib escaper.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitize removes C0/C1 control characters and canonicalizes HTML-entity
// escaping: unescape, strip controls, re-escape. Calling Sanitize again on
// its own output is the identity. Empty input returns ("", false).
func Sanitize(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	unescaped := html.UnescapeString(s)

	var b strings.Builder
	b.Grow(len(unescaped))
	for _, r := range unescaped {
		if (r >= 0x00 && r <= 0x1f) || (r >= 0x7f && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	return xmlEscaper.Replace(b.String()), true
}

func sanitizeOrEmpty(s string) string {
	v, _ := Sanitize(s)
	return v
}
