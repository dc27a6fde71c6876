// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// RecordReader is the common contract for the three streaming readers
// (PRN, TXT, XML) and for BinaryReader: advance with Next, read the
// current record with Record, check for a terminal error with Err, and
// release the underlying stream once with Close.
type RecordReader interface {
	Next() bool
	Record() *Record
	Err() error
	Close() error
}

// boundaryFunc reports whether line marks the end of the current chunk.
type boundaryFunc func(line string) bool

// newBoundaryFunc builds a boundaryFunc from a set of literal substrings
// plus an optional regular expression matched against the trimmed line.
// The three streaming readers share this single boundary-scan structure,
// parameterized only by what counts as a boundary (§9).
func newBoundaryFunc(literals []string, anchored *regexp.Regexp) boundaryFunc {
	return func(line string) bool {
		for _, lit := range literals {
			if strings.Contains(line, lit) {
				return true
			}
		}
		if anchored != nil && anchored.MatchString(strings.TrimSpace(line)) {
			return true
		}
		return false
	}
}

// lineChunker groups the lines of a stream into boundary-delimited
// chunks: lines accumulate until the next boundary line or end of stream.
// Empty chunks are skipped, matching §4.5.
type lineChunker struct {
	sc       *bufio.Scanner
	boundary boundaryFunc
	buf      []string
}

func newLineChunker(r io.Reader, boundary boundaryFunc) *lineChunker {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineChunker{sc: sc, boundary: boundary}
}

// next returns the next non-empty chunk of lines, or false when exhausted.
func (c *lineChunker) next() ([]string, bool) {
	for c.sc.Scan() {
		line := c.sc.Text()
		if c.boundary(line) {
			if len(c.buf) == 0 {
				continue
			}
			chunk := c.buf
			c.buf = nil
			return chunk, true
		}
		c.buf = append(c.buf, line)
	}
	if len(c.buf) > 0 {
		chunk := c.buf
		c.buf = nil
		return chunk, true
	}
	return nil, false
}

func (c *lineChunker) err() error {
	return c.sc.Err()
}

// closerOf returns r as an io.Closer if it implements one, else nil.
func closerOf(r io.Reader) io.Closer {
	if c, ok := r.(io.Closer); ok {
		return c
	}
	return nil
}

// elementRegexps holds one compiled <name>...</name> matcher per PRN/TXT
// child-element name used by the call/item extraction in prn_reader.go.
// Built once at init time rather than lazily, so readers stay safe to use
// from multiple goroutines processing distinct Records concurrently (§5).
var elementRegexps = map[string]*regexp.Regexp{}

func mustElementRegexp(name string) *regexp.Regexp {
	re := regexp.MustCompile(`(?s)<` + name + `>(.*?)</` + name + `>`)
	elementRegexps[name] = re
	return re
}

func extractTag(body, name string) (string, bool) {
	re, ok := elementRegexps[name]
	if !ok {
		re = mustElementRegexp(name)
	}
	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func init() {
	for _, name := range []string{
		"callNumber", "library", "copyNumber", "itemID", "dateCreated",
		"location", "homeLocation", "type", "category1", "category2",
		"dateModified",
	} {
		mustElementRegexp(name)
	}
}
