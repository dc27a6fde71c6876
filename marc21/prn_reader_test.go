// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const prnSample = `<?xml version="1.0"?>
<report>
<marcEntry tag="001" label="" ind="  ">|aocm12345</marcEntry>
<marcEntry tag="245" label="Title" ind="10">|aGarden exhibition /|cSFMA.</marcEntry>
<call>
<callNumber>QA76</callNumber>
<item>
<itemID>42</itemID>
<homeLocation>MAIN</homeLocation>
</item>
</call>
</report>
`

func TestPRNReader_ParsesEntryAndItemFields(t *testing.T) {
	r := NewPRNReader(strings.NewReader(prnSample))
	require.True(t, r.Next())
	rec := r.Record()
	require.NotNil(t, rec)

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

	item := rec.First("999")
	require.NotNil(t, item)
	require.Equal(t, "QA76", item.GetSubfields('a')[0])
	require.Equal(t, "ALPHANUM", item.GetSubfields('w')[0])
	require.Equal(t, "42", item.GetSubfields('i')[0])
	require.Equal(t, "MAIN", item.GetSubfields('l')[0])
	require.Equal(t, "Y", item.GetSubfields('r')[0])
	require.Equal(t, "Y", item.GetSubfields('s')[0])

	// Order must be a, w, i, l, r, s for this item (no copyNumber,
	// dateCreated, library, trailer or date fields present).
	codes := make([]byte, 0, len(item.Subfields()))
	for _, sf := range item.Subfields() {
		codes = append(codes, sf.Code)
	}
	require.Equal(t, []byte{'a', 'w', 'i', 'l', 'r', 's'}, codes)

	require.False(t, r.Next())
	require.NoError(t, r.Err())
}

func TestPRNReader_MissingCallNumberUsesPlaceholder(t *testing.T) {
	const sample = `<?xml version="1.0"?>
<report>
<call>
<item>
<itemID>7</itemID>
</item>
</call>
</report>
`
	r := NewPRNReader(strings.NewReader(sample))
	require.True(t, r.Next())
	item := r.Record().First("999")
	require.NotNil(t, item)
	require.Equal(t, "[NO CALL NUMBER]", item.GetSubfields('a')[0])
}

func TestPRNReader_MultipleRecordsSplitOnBoundary(t *testing.T) {
	two := prnSample + prnSample
	r := NewPRNReader(strings.NewReader(two))
	count := 0
	for r.Next() {
		count++
		require.NotNil(t, r.Record().First("245"))
	}
	require.NoError(t, r.Err())
	require.Equal(t, 2, count)
}
