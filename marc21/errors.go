// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "errors"

// Sentinel errors raised by the binary decoder. Each names a specific
// structural violation of the ISO 2709 container; none are retried
// internally.
var (
	ErrRecordLength      = errors.New("marc21: record length is invalid")
	ErrLeader            = errors.New("marc21: leader is invalid")
	ErrDirectory         = errors.New("marc21: directory length is invalid")
	ErrFields            = errors.New("marc21: no fields decoded")
	ErrBaseAddress       = errors.New("marc21: base address must be positive")
	ErrBaseAddressLength = errors.New("marc21: base address exceeds record length")
	ErrRecordWriting     = errors.New("marc21: writer requires a *Record")
)
