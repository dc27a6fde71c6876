// Copyright 2013 Thomas Emerson. All rights reserved.

// Package marc21 reads and writes bibliographic catalog records in binary
// ISO 2709 MARC, slim MARCXML, and two vendor export dialects (a PRN
// XML-ish dump and a TXT mnemonic dump), and converts between them.
//
// The Record and Field types are the single in-memory canonical form; the
// binary, XML and mnemonic codecs are pure functions over a Record. The
// PRN, TXT and XML readers stream one Record per call from a vendor export
// file that has no single well-formed outer document.
package marc21

// Version is the library version.
const Version = "1.0.0"
