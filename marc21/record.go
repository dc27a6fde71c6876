// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Record is an ordered collection of Fields plus a 24-byte leader.
type Record struct {
	Leader string
	fields []Field
}

const defaultLeader = "                        "

// normalizeLeader pads or truncates leader to 24 characters and forces the
// positions §3 dictates are always overwritten: position 9 to 'a'
// (Unicode), positions 10-11 to "22", positions 20-23 to "4500". Length
// (0-4) and base address (12-16) are left untouched; they are only
// recomputed on emission.
func normalizeLeader(leader string) string {
	switch {
	case len(leader) < leaderSize:
		leader += strings.Repeat(" ", leaderSize-len(leader))
	case len(leader) > leaderSize:
		leader = leader[:leaderSize]
	}
	b := []byte(leader)
	b[9] = 'a'
	copy(b[10:12], "22")
	copy(b[20:24], "4500")
	return string(b)
}

// NewRecord constructs a Record with the given leader (or a default
// 24-space leader if empty), normalized per §3.
func NewRecord(leader string) *Record {
	if leader == "" {
		leader = defaultLeader
	}
	return &Record{Leader: normalizeLeader(leader)}
}

// NewRecordFromBinary decodes a Record from an ISO 2709 byte stream; see
// DecodeBinary.
func NewRecordFromBinary(data []byte) (*Record, error) {
	return DecodeBinary(data)
}

// GetFields returns the subset of fields whose (upper-cased) tag matches
// any of tags, preserving order. With no tags, all fields are returned.
func (r *Record) GetFields(tags ...string) []Field {
	if len(tags) == 0 {
		return append([]Field(nil), r.fields...)
	}
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToUpper(normalizeTag(t))] = true
	}
	var out []Field
	for _, f := range r.fields {
		if want[strings.ToUpper(f.Tag())] {
			out = append(out, f)
		}
	}
	return out
}

// AddField appends fields without reordering.
func (r *Record) AddField(fields ...Field) {
	r.fields = append(r.fields, fields...)
}

// AddOrderedField inserts each field per the ordered-insertion invariant
// of §3: ascending order among three-digit tags, sentinel control-like
// tags left where the stream put them, non-numeric tags pushed to a tail
// region.
func (r *Record) AddOrderedField(fields ...Field) {
	for _, f := range fields {
		r.insertOrdered(f)
	}
}

func (r *Record) insertOrdered(f Field) {
	tag := f.Tag()
	newNum, isDigitTag := isThreeDigitTag(tag)
	if len(r.fields) == 0 || !isDigitTag {
		r.fields = append(r.fields, f)
		return
	}

	insertAt := -1
	for i, existing := range r.fields {
		et := existing.Tag()
		if n, ok := isThreeDigitTag(et); ok {
			if n > newNum {
				insertAt = i
				break
			}
			continue
		}
		if sentinelTags[et] {
			continue
		}
		insertAt = i
		break
	}

	if insertAt == -1 {
		r.fields = append(r.fields, f)
		return
	}
	r.fields = append(r.fields, nil)
	copy(r.fields[insertAt+1:], r.fields[insertAt:])
	r.fields[insertAt] = f
}

// Contains reports whether tag is present (case-insensitive).
func (r *Record) Contains(tag string) bool {
	return r.First(tag) != nil
}

// First returns the first field matching tag (case-insensitive), or nil.
func (r *Record) First(tag string) Field {
	want := strings.ToUpper(normalizeTag(tag))
	for _, f := range r.fields {
		if strings.ToUpper(f.Tag()) == want {
			return f
		}
	}
	return nil
}

// Identifier returns the data of the first 001 field with a leading CKEY
// literal stripped and surrounding whitespace removed, or ("", false) if
// absent.
func (r *Record) Identifier() (string, bool) {
	f := r.First("001")
	if f == nil {
		return "", false
	}
	data := strings.TrimSpace(f.Data())
	data = strings.TrimPrefix(data, "CKEY")
	data = strings.TrimSpace(data)
	return data, true
}

// directoryTag formats tag for the directory: three digits, zero-padded,
// if it is numeric, else the tag right-justified in three characters as
// already stored. A field's display tag (via normalizeTag) space-pads a
// short numeric string rather than zero-padding it (e.g. "1" is stored as
// "  1"), so isThreeDigitTag's exact-three-digit check never fires on it;
// the directory needs its own tolerant parse per §4.3.
func directoryTag(tag string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(tag)); err == nil {
		return fmt.Sprintf("%03d", n)
	}
	return tag
}

// encodeParts builds the directory and field-data bytes for the record
// and formats the leader that as_binary, as_xml and as_mnemonic all share.
func (r *Record) encodeParts() (leader string, directory []byte, fieldsBytes []byte) {
	var dir bytes.Buffer
	var fb []byte
	offset := 0
	for _, f := range r.fields {
		data := f.AsBinary()
		fmt.Fprintf(&dir, "%s%04d%05d", directoryTag(f.Tag()), len(data), offset)
		fb = append(fb, data...)
		offset += len(data)
	}
	dir.WriteByte(fieldTerminator)
	fb = append(fb, recordTerminator)

	baseAddress := leaderSize + dir.Len()
	recordLength := baseAddress + len(fb)
	leader = formatLeader(normalizeLeader(r.Leader), recordLength, baseAddress)
	return leader, dir.Bytes(), fb
}

// formatLeader rebuilds the 24-character leader with a fresh record
// length and base address, keeping the rest of leader unchanged. Per §9,
// this is correct only because the leader is pure ASCII: byte offsets and
// character offsets coincide.
func formatLeader(leader string, recordLength, baseAddress int) string {
	return fmt.Sprintf("%05d%s%05d%s", recordLength, leader[5:12], baseAddress, leader[17:24])
}

// AsBinary emits the ISO 2709 container: leader, directory, field data.
func (r *Record) AsBinary() []byte {
	leader, directory, fieldsBytes := r.encodeParts()
	out := make([]byte, 0, len(leader)+len(directory)+len(fieldsBytes))
	out = append(out, leader...)
	out = append(out, directory...)
	out = append(out, fieldsBytes...)
	return out
}

// AsXML emits a <marc:record> element; the caller is responsible for the
// enclosing <marc:collection>.
func (r *Record) AsXML() string {
	leader, _, _ := r.encodeParts()
	var b strings.Builder
	b.WriteString("\n\t<marc:record>")
	b.WriteString("\n\t\t<marc:leader>")
	b.WriteString(leader)
	b.WriteString("</marc:leader>")
	for _, f := range r.fields {
		b.WriteString("\n\t\t")
		b.WriteString(f.AsXML())
	}
	b.WriteString("\n\t</marc:record>")
	return b.String()
}

// AsMnemonic emits "=LDR  " followed by the recomputed leader, then each
// field's mnemonic form joined by newlines.
func (r *Record) AsMnemonic() string {
	leader, _, _ := r.encodeParts()
	lines := make([]string, 0, len(r.fields)+1)
	lines = append(lines, "=LDR  "+leader)
	for _, f := range r.fields {
		lines = append(lines, f.AsMnemonic())
	}
	return strings.Join(lines, "\n")
}
