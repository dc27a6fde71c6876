// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize_EmptyIsFalse(t *testing.T) {
	v, ok := Sanitize("")
	require.False(t, ok)
	require.Equal(t, "", v)
}

func TestSanitize_StripsControlCharacters(t *testing.T) {
	v, ok := Sanitize("A&amp;B\x01C")
	require.True(t, ok)
	require.Equal(t, "A&amp;BC", v)
}

func TestSanitize_EscapesOnlyAmpLtGt(t *testing.T) {
	v, _ := Sanitize(`quotes "stay" untouched, but < & > don't`)
	require.Equal(t, `quotes "stay" untouched, but &lt; &amp; &gt; don't`, v)
}

func TestSanitize_IsIdempotent(t *testing.T) {
	once, _ := Sanitize("Smith & Co. <1999>\x7f")
	twice, _ := Sanitize(once)
	require.Equal(t, once, twice)
}

func TestSanitize_StripsC1Controls(t *testing.T) {
	v, _ := Sanitize("before\u009Aafter")
	require.Equal(t, "beforeafter", v)
}
