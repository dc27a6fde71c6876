// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"fmt"
	"io"
)

// BinaryWriter appends ISO 2709 records to an output stream.
type BinaryWriter struct {
	w io.Writer
}

// NewBinaryWriter wraps w for writing binary MARC records.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w}
}

// Write appends record.AsBinary() to the underlying stream. v must be a
// *Record; anything else is rejected with ErrRecordWriting.
func (bw *BinaryWriter) Write(v interface{}) error {
	rec, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("marc21: write: %w", ErrRecordWriting)
	}
	_, err := bw.w.Write(rec.AsBinary())
	return err
}

// Close releases the writer. It is a no-op beyond closing the underlying
// stream if it implements io.Closer.
func (bw *BinaryWriter) Close() error {
	if c, ok := bw.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
