// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	xmlReaderBoundaryLiterals = []string{
		`<record xmlns="http://www.loc.gov/mods/v3">`,
		"<?xml version",
		"<OAI-PMH",
		"<ListRecords>",
		"</ListRecords>",
	}
	xmlControlFieldRe = regexp.MustCompile(`(?s)<controlfield tag="([^"]*)">(.*?)</controlfield>`)
	xmlDataFieldRe    = regexp.MustCompile(`(?s)<datafield tag="([^"]*)" ind1="([^"]*)" ind2="([^"]*)">(.*?)</datafield>`)
	xmlSubfieldRe     = regexp.MustCompile(`(?s)<subfield code="([^"]*)">(.*?)</subfield>`)
)

// XMLReader streams records out of the slim-XML reader dialect, a
// concatenation of record fragments bounded by the markers in §4.5. It is
// deliberately not an XML-aware parser: like the PRN and TXT readers, it
// scans lines and tolerates an unbalanced outer document.
type XMLReader struct {
	chunker *lineChunker
	closer  io.Closer
	cur     *Record
}

// NewXMLReader wraps r for reading the XML reader dialect.
func NewXMLReader(r io.Reader) *XMLReader {
	boundary := newBoundaryFunc(xmlReaderBoundaryLiterals, nil)
	return &XMLReader{chunker: newLineChunker(r, boundary), closer: closerOf(r)}
}

func (x *XMLReader) Next() bool {
	lines, ok := x.chunker.next()
	if !ok {
		return false
	}
	x.cur = parseXMLReaderChunk(lines)
	return true
}

func (x *XMLReader) Record() *Record { return x.cur }
func (x *XMLReader) Err() error      { return x.chunker.err() }

func (x *XMLReader) Close() error {
	if x.closer != nil {
		return x.closer.Close()
	}
	return nil
}

func parseXMLReaderChunk(lines []string) *Record {
	rec := NewRecord("")
	joined := strings.Join(lines, "\n")

	for _, m := range xmlControlFieldRe.FindAllStringSubmatch(joined, -1) {
		tag := normalizeTag(m[1])
		rec.AddOrderedField(NewControlField(tag, html.UnescapeString(m[2])))
	}

	for _, m := range xmlDataFieldRe.FindAllStringSubmatch(joined, -1) {
		tag := normalizeTag(m[1])
		ind1, ind2 := blankOrFirstByte(m[2]), blankOrFirstByte(m[3])

		var subs []Subfield
		for _, sm := range xmlSubfieldRe.FindAllStringSubmatch(m[4], -1) {
			if sm[1] == "" {
				continue
			}
			subs = append(subs, Subfield{Code: sm[1][0], Value: html.UnescapeString(sm[2])})
		}
		rec.AddOrderedField(NewDataField(tag, ind1, ind2, subs))
	}

	return rec
}

func blankOrFirstByte(attr string) byte {
	if attr == "" {
		return ' '
	}
	return attr[0]
}
