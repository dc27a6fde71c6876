// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	subfieldIndicator = 0x1f
	fieldTerminator   = 0x1e
	recordTerminator  = 0x1d
)

const (
	leaderSize         = 24
	directoryEntrySize = 12
)

// Subfield is a single (code, value) pair within a data field. Order is
// significant: codes may repeat and the sequence is preserved verbatim.
type Subfield struct {
	Code  byte
	Value string
}

// Field is a single MARC field: either a control field carrying opaque
// data, or a data field carrying two indicators and an ordered subfield
// list. The two shapes are modeled as distinct types rather than one
// struct with optional members, so no operation needs to branch on
// IsControlField internally.
type Field interface {
	// Tag returns the three-character, right-justified tag.
	Tag() string
	// IsControlField reports whether this field is control-like.
	IsControlField() bool
	// Data returns the opaque payload of a control field, or "" for a
	// data field.
	Data() string
	// Indicators returns the two indicator bytes of a data field, or two
	// blanks for a control field.
	Indicators() (byte, byte)
	// Subfields returns the ordered subfield list of a data field, or nil
	// for a control field.
	Subfields() []Subfield
	// GetSubfields returns the values of subfields matching any of the
	// given codes, in field order. With no codes, all values are returned.
	// Always nil for a control field.
	GetSubfields(codes ...byte) []string
	// AddSubfield appends (code, sanitize(value)) to a data field's
	// subfield list. A no-op on a control field.
	AddSubfield(code byte, value string)
	// Iterate returns a copy of the (code, value) pairs in insertion
	// order. Always nil for a control field.
	Iterate() []Subfield

	AsBinary() []byte
	AsXML() string
	AsMnemonic() string
}

// normalizeTag right-justifies tag in a three-character cell. Tags already
// three characters or longer are returned unchanged.
func normalizeTag(tag string) string {
	return fmt.Sprintf("%3s", tag)
}

var sentinelTags = map[string]bool{"DB ": true, "SYS": true, "LDR": true}

// isControlLike reports whether tag is control-like: three ASCII digits
// numerically less than 010, or one of the sentinel strings "DB ", "SYS",
// "LDR".
func isControlLike(tag string) bool {
	if sentinelTags[tag] {
		return true
	}
	if len(tag) != 3 {
		return false
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return false
	}
	return n < 10
}

func isThreeDigitTag(tag string) (int, bool) {
	if len(tag) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ControlField is a field carrying an opaque string payload.
type ControlField struct {
	tag  string
	data string
}

// NewControlField constructs a control field. tag is normalized per §3.
func NewControlField(tag, data string) *ControlField {
	return &ControlField{tag: normalizeTag(tag), data: data}
}

func (c *ControlField) Tag() string                     { return c.tag }
func (c *ControlField) IsControlField() bool            { return true }
func (c *ControlField) Data() string                    { return c.data }
func (c *ControlField) Indicators() (byte, byte)        { return ' ', ' ' }
func (c *ControlField) Subfields() []Subfield           { return nil }
func (c *ControlField) GetSubfields(_ ...byte) []string { return nil }
func (c *ControlField) AddSubfield(_ byte, _ string)    {}
func (c *ControlField) Iterate() []Subfield             { return nil }

func (c *ControlField) AsBinary() []byte {
	b := make([]byte, 0, len(c.data)+1)
	b = append(b, []byte(c.data)...)
	b = append(b, fieldTerminator)
	return b
}

func (c *ControlField) AsXML() string {
	return fmt.Sprintf(`<marc:controlfield tag="%s">%s</marc:controlfield>`, c.tag, sanitizeOrEmpty(c.data))
}

func (c *ControlField) AsMnemonic() string {
	return "=" + c.tag + "  " + strings.ReplaceAll(c.data, " ", "#")
}

// DataField is a field with two indicators and an ordered subfield list.
type DataField struct {
	tag        string
	ind1, ind2 byte
	subfields  []Subfield
}

// NewDataField constructs a data field. tag is normalized per §3; blank or
// absent indicators default to a space.
func NewDataField(tag string, ind1, ind2 byte, subfields []Subfield) *DataField {
	if ind1 == 0 || ind1 == ' ' {
		ind1 = ' '
	}
	if ind2 == 0 || ind2 == ' ' {
		ind2 = ' '
	}
	cp := append([]Subfield(nil), subfields...)
	return &DataField{tag: normalizeTag(tag), ind1: ind1, ind2: ind2, subfields: cp}
}

func (d *DataField) Tag() string                 { return d.tag }
func (d *DataField) IsControlField() bool        { return false }
func (d *DataField) Data() string                { return "" }
func (d *DataField) Indicators() (byte, byte)    { return d.ind1, d.ind2 }
func (d *DataField) Subfields() []Subfield       { return append([]Subfield(nil), d.subfields...) }

func (d *DataField) GetSubfields(codes ...byte) []string {
	var out []string
	for _, sf := range d.subfields {
		if len(codes) == 0 || containsByte(codes, sf.Code) {
			out = append(out, sf.Value)
		}
	}
	return out
}

func (d *DataField) AddSubfield(code byte, value string) {
	v := sanitizeOrEmpty(value)
	d.subfields = append(d.subfields, Subfield{Code: code, Value: v})
}

func (d *DataField) Iterate() []Subfield {
	return append([]Subfield(nil), d.subfields...)
}

func (d *DataField) AsBinary() []byte {
	var b []byte
	b = append(b, d.ind1, d.ind2)
	for _, sf := range d.subfields {
		b = append(b, subfieldIndicator, sf.Code)
		b = append(b, []byte(sf.Value)...)
	}
	b = append(b, fieldTerminator)
	return b
}

func (d *DataField) AsXML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<marc:datafield tag="%s" ind1="%c" ind2="%c">`, d.tag, d.ind1, d.ind2)
	for _, sf := range d.subfields {
		fmt.Fprintf(&b, `<marc:subfield code="%c">%s</marc:subfield>`, sf.Code, sanitizeOrEmpty(strings.TrimSpace(sf.Value)))
	}
	b.WriteString("</marc:datafield>")
	return b.String()
}

func (d *DataField) AsMnemonic() string {
	i1, i2 := d.ind1, d.ind2
	if i1 == ' ' {
		i1 = '#'
	}
	if i2 == ' ' {
		i2 = '#'
	}
	var b strings.Builder
	b.WriteString("=")
	b.WriteString(d.tag)
	b.WriteString("  ")
	b.WriteByte(i1)
	b.WriteByte(i2)
	b.WriteString(" ")
	for _, sf := range d.subfields {
		b.WriteString("$")
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	return b.String()
}

// newField constructs a Field of the shape dictated by tag's
// classification, regardless of which constructor arguments the caller
// happens to have on hand. The codecs in this package do not call it; they
// classify with isControlLike and call NewControlField or NewDataField
// directly.
func newField(tag string, ind1, ind2 byte, subfields []Subfield, data string) Field {
	tag = normalizeTag(tag)
	if isControlLike(tag) {
		return NewControlField(tag, data)
	}
	return NewDataField(tag, ind1, ind2, subfields)
}

func containsByte(haystack []byte, b byte) bool {
	for _, h := range haystack {
		if h == b {
			return true
		}
	}
	return false
}
