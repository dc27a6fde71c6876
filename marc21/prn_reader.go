// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"io"
	"regexp"
	"strings"
)

var (
	prnDateCreatedBoundary = regexp.MustCompile(`^<dateCreated>\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}</dateCreated>$`)
	prnBoundaryLiterals    = []string{
		"<?xml version", "<title>", "<report>", "</report>",
		"<dateFormat>", "<catalog>",
	}
	prnMarcEntryRe = regexp.MustCompile(`(?s)<marcEntry tag="([^"]*)" label="[^"]*" ind="([^"]*)">(.*?)</marcEntry>`)
	prnCallRe      = regexp.MustCompile(`(?s)<call>(.*?)</call>`)
	prnItemRe      = regexp.MustCompile(`(?s)<item>(.*?)</item>`)
)

// PRNReader streams records out of the vendor PRN XML-ish export: a
// concatenation of fragments with no single well-formed root, bounded by
// the markers in §4.5.
type PRNReader struct {
	chunker *lineChunker
	closer  io.Closer
	cur     *Record
}

// NewPRNReader wraps r for reading the PRN export dialect.
func NewPRNReader(r io.Reader) *PRNReader {
	boundary := newBoundaryFunc(prnBoundaryLiterals, prnDateCreatedBoundary)
	return &PRNReader{chunker: newLineChunker(r, boundary), closer: closerOf(r)}
}

// Next advances to the next record, returning false at end of stream.
func (p *PRNReader) Next() bool {
	lines, ok := p.chunker.next()
	if !ok {
		return false
	}
	p.cur = parsePRNChunk(lines)
	return true
}

// Record returns the record produced by the most recent Next call.
func (p *PRNReader) Record() *Record { return p.cur }

// Err returns the underlying scan error, if any.
func (p *PRNReader) Err() error { return p.chunker.err() }

// Close releases the underlying stream, if it implements io.Closer.
func (p *PRNReader) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}

func parsePRNChunk(lines []string) *Record {
	rec := NewRecord("")
	joined := strings.Join(lines, "\n")

	for _, m := range prnMarcEntryRe.FindAllStringSubmatch(joined, -1) {
		tag, ind, content := m[1], m[2], m[3]
		rec.AddOrderedField(prnEntryField(tag, ind, content))
	}

	flat := strings.Join(lines, "")
	for _, cm := range prnCallRe.FindAllStringSubmatch(flat, -1) {
		for _, f := range prnItemFields(cm[1]) {
			rec.AddOrderedField(f)
		}
	}

	return rec
}

// prnEntryField builds the Field a single <marcEntry> element contributes.
func prnEntryField(tag, ind, content string) Field {
	tag = normalizeTag(tag)
	if isControlLike(tag) {
		return NewControlField(tag, opaqueAfterPipeA(content))
	}

	var ind1, ind2 byte = ' ', ' '
	if len(ind) > 0 {
		ind1 = ind[0]
	}
	if len(ind) > 1 {
		ind2 = ind[1]
	}

	parts := strings.Split(content, "|")
	var subs []Subfield
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		subs = append(subs, Subfield{Code: part[0], Value: part[1:]})
	}
	return NewDataField(tag, ind1, ind2, subs)
}

// opaqueAfterPipeA returns the content after the first "|a" marker, or the
// trimmed content if no "|a" is present. Shared by the PRN and TXT
// readers' control-field handling.
func opaqueAfterPipeA(content string) string {
	if idx := strings.Index(content, "|a"); idx != -1 {
		return content[idx+2:]
	}
	return strings.TrimSpace(content)
}

type itemSubfieldTag struct {
	code byte
	name string
}

var (
	itemMiddleTags  = []itemSubfieldTag{{'c', "copyNumber"}, {'i', "itemID"}, {'d', "dateCreated"}, {'k', "location"}, {'l', "homeLocation"}}
	itemTrailerTags = []itemSubfieldTag{{'t', "type"}, {'x', "category1"}, {'z', "category2"}}
)

// prnItemFields builds one tag-999 Field per <item> in a <call> block, in
// the fixed subfield sequence dictated by §4.5.
func prnItemFields(callBody string) []Field {
	callNumber, _ := extractTag(callBody, "callNumber")
	if callNumber == "" {
		callNumber = "[NO CALL NUMBER]"
	}
	library, hasLibrary := extractTag(callBody, "library")

	var fields []Field
	for _, im := range prnItemRe.FindAllStringSubmatch(callBody, -1) {
		itemBody := im[1]
		subs := []Subfield{
			{Code: 'a', Value: callNumber},
			{Code: 'w', Value: "ALPHANUM"},
		}
		for _, t := range itemMiddleTags {
			if v, ok := extractTag(itemBody, t.name); ok && v != "" {
				subs = append(subs, Subfield{Code: t.code, Value: v})
			}
		}
		if hasLibrary && library != "" {
			subs = append(subs, Subfield{Code: 'm', Value: library})
		}
		subs = append(subs, Subfield{Code: 'r', Value: "Y"}, Subfield{Code: 's', Value: "Y"})
		for _, t := range itemTrailerTags {
			if v, ok := extractTag(itemBody, t.name); ok && v != "" {
				subs = append(subs, Subfield{Code: t.code, Value: v})
			}
		}
		u, ok := extractTag(itemBody, "dateModified")
		if !ok || u == "" {
			u, ok = extractTag(itemBody, "dateCreated")
		}
		if ok && u != "" {
			subs = append(subs, Subfield{Code: 'u', Value: u})
		}

		fields = append(fields, NewDataField("999", ' ', ' ', subs))
	}
	return fields
}
