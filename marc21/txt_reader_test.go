// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const txtRecord = ` FORM=MARC
*001  |aocm12345
*245  10|aGarden exhibition /|cSFMA.
`

func TestTXTReader_ParsesFormControlAndDataFields(t *testing.T) {
	r := NewTXTReader(strings.NewReader(txtRecord))
	require.True(t, r.Next())
	rec := r.Record()

	fmtField := rec.First("FMT")
	require.NotNil(t, fmtField)
	require.Equal(t, []string{"MARC"}, fmtField.GetSubfields('a'))

	f001 := rec.First("001")
	require.NotNil(t, f001)
	require.True(t, f001.IsControlField())
	require.Equal(t, "ocm12345", f001.Data())

	f245 := rec.First("245")
	require.NotNil(t, f245)
	ind1, ind2 := f245.Indicators()
	require.Equal(t, byte('1'), ind1)
	require.Equal(t, byte('0'), ind2)
	require.Equal(t, []string{"Garden exhibition /"}, f245.GetSubfields('a'))
	require.Equal(t, []string{"SFMA."}, f245.GetSubfields('c'))

	require.False(t, r.Next())
	require.NoError(t, r.Err())
}

func TestTXTReader_SplitsExactlyOnDocumentBoundary(t *testing.T) {
	three := strings.Join([]string{txtRecord, txtRecord, txtRecord}, "*** DOCUMENT BOUNDARY ***\n")
	r := NewTXTReader(strings.NewReader(three))
	count := 0
	for r.Next() {
		count++
		require.NotNil(t, r.Record().First("245"))
	}
	require.NoError(t, r.Err())
	require.Equal(t, 3, count)
}

func TestTXTReader_BlankLinesIgnored(t *testing.T) {
	r := NewTXTReader(strings.NewReader("\n*001  |aabc\n\n"))
	require.True(t, r.Next())
	require.NotNil(t, r.Record().First("001"))
}
