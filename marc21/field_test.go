// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTag(t *testing.T) {
	require.Equal(t, "  1", normalizeTag("1"))
	require.Equal(t, "245", normalizeTag("245"))
}

func TestControlField_Basics(t *testing.T) {
	f := NewControlField("1", "ocm12345")
	require.Equal(t, "  1", f.Tag())
	require.True(t, f.IsControlField())
	require.Equal(t, "ocm12345", f.Data())
	ind1, ind2 := f.Indicators()
	require.Equal(t, byte(' '), ind1)
	require.Equal(t, byte(' '), ind2)
	require.Nil(t, f.Subfields())
	require.Nil(t, f.GetSubfields('a'))
	f.AddSubfield('a', "no-op")
	require.Equal(t, "ocm12345", f.Data())
}

func TestControlField_AsXMLSanitizes(t *testing.T) {
	f := NewControlField("001", "a & b")
	require.Equal(t, `<marc:controlfield tag="001">a &amp; b</marc:controlfield>`, f.AsXML())
}

func TestControlField_AsMnemonicReplacesSpaces(t *testing.T) {
	f := NewControlField("008", "850101s1985")
	require.Equal(t, "=008  850101s1985", f.AsMnemonic())
	f2 := NewControlField("001", "a b")
	require.Equal(t, "=001  a#b", f2.AsMnemonic())
}

func TestDataField_IndicatorsDefaultToSpace(t *testing.T) {
	f := NewDataField("245", 0, 0, nil)
	ind1, ind2 := f.Indicators()
	require.Equal(t, byte(' '), ind1)
	require.Equal(t, byte(' '), ind2)
}

func TestDataField_GetSubfieldsFiltersByCode(t *testing.T) {
	f := NewDataField("245", '1', '0', []Subfield{
		{Code: 'a', Value: "Title /"},
		{Code: 'b', Value: "subtitle"},
		{Code: 'a', Value: "repeated a"},
	})
	require.Equal(t, []string{"Title /", "repeated a"}, f.GetSubfields('a'))
	require.Equal(t, []string{"Title /", "subtitle", "repeated a"}, f.GetSubfields())
}

func TestDataField_AddSubfieldSanitizesValue(t *testing.T) {
	f := NewDataField("500", ' ', ' ', nil)
	f.AddSubfield('a', "Tom & Jerry\x01")
	require.Equal(t, []string{"Tom &amp; Jerry"}, f.GetSubfields('a'))
}

func TestDataField_SubfieldsIsACopy(t *testing.T) {
	f := NewDataField("245", ' ', ' ', []Subfield{{Code: 'a', Value: "x"}})
	got := f.Subfields()
	got[0].Value = "mutated"
	require.Equal(t, []string{"x"}, f.GetSubfields('a'))
}

func TestDataField_AsXML(t *testing.T) {
	f := NewDataField("245", '1', '0', []Subfield{
		{Code: 'a', Value: "Garden exhibition /"},
		{Code: 'c', Value: "SFMA."},
	})
	require.Equal(t,
		`<marc:datafield tag="245" ind1="1" ind2="0">`+
			`<marc:subfield code="a">Garden exhibition /</marc:subfield>`+
			`<marc:subfield code="c">SFMA.</marc:subfield>`+
			`</marc:datafield>`,
		f.AsXML())
}

func TestDataField_AsMnemonic(t *testing.T) {
	f := NewDataField("245", '1', ' ', []Subfield{{Code: 'a', Value: "Title /"}})
	require.Equal(t, "=245  1# $aTitle /", f.AsMnemonic())
}

func TestIsControlLike(t *testing.T) {
	cases := map[string]bool{
		"001": true, "009": true, "010": false, "245": false,
		"LDR": true, "SYS": true, "DB ": true, "ABC": false,
	}
	for tag, want := range cases {
		require.Equal(t, want, isControlLike(tag), "tag %q", tag)
	}
}

func TestIsControlLike_IdempotentUnderReclassification(t *testing.T) {
	// Round-tripping a control field through newField with its own
	// reported tag must not flip its classification.
	f := newField("001", ' ', ' ', nil, "value")
	again := newField(f.Tag(), ' ', ' ', f.Subfields(), f.Data())
	require.Equal(t, f.IsControlField(), again.IsControlField())
}

func TestNewField_DispatchesOnTagClassification(t *testing.T) {
	cf := newField("001", ' ', ' ', nil, "x")
	require.True(t, cf.IsControlField())
	df := newField("245", '1', '0', []Subfield{{Code: 'a', Value: "x"}}, "")
	require.False(t, df.IsControlField())
}
