// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// DecodeBinary parses an ISO 2709 container into a Record. It returns one
// of the sentinel errors in errors.go on any structural violation.
func DecodeBinary(data []byte) (*Record, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("marc21: decode: %w", ErrRecordLength)
	}
	totalLen, err := decodeDecimal(data[:5])
	if err != nil || totalLen < leaderSize+2 || totalLen > len(data) {
		return nil, fmt.Errorf("marc21: decode: %w", ErrRecordLength)
	}
	record := data[:totalLen]

	if len(record) < leaderSize {
		return nil, fmt.Errorf("marc21: decode: %w", ErrLeader)
	}
	leader := normalizeLeader(string(record[:leaderSize]))

	baseAddress, err := decodeDecimal(record[12:17])
	if err != nil || baseAddress <= 0 {
		return nil, fmt.Errorf("marc21: decode: %w", ErrBaseAddress)
	}
	if baseAddress >= totalLen {
		return nil, fmt.Errorf("marc21: decode: %w", ErrBaseAddressLength)
	}
	if baseAddress-1 < leaderSize {
		return nil, fmt.Errorf("marc21: decode: %w", ErrDirectory)
	}

	directory := record[leaderSize : baseAddress-1]
	if len(directory)%directoryEntrySize != 0 {
		return nil, fmt.Errorf("marc21: decode: %w", ErrDirectory)
	}

	var fields []Field
	for i := 0; i+directoryEntrySize <= len(directory); i += directoryEntrySize {
		entry := directory[i : i+directoryEntrySize]
		tag := string(entry[0:3])
		length, lenErr := decodeDecimal(entry[3:7])
		offset, offErr := decodeDecimal(entry[7:12])
		if lenErr != nil || offErr != nil {
			slog.Default().Warn("marc21: skipping directory entry with malformed length/offset", "tag", tag)
			continue
		}
		start := baseAddress + offset
		end := start + length - 1
		if start < 0 || end < start || end > len(record) {
			slog.Default().Warn("marc21: skipping directory entry outside record bounds", "tag", tag)
			continue
		}
		fields = append(fields, decodeFieldData(tag, record[start:end]))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("marc21: decode: %w", ErrFields)
	}

	return &Record{Leader: leader, fields: fields}, nil
}

// decodeFieldData builds a Field from its raw slice of directory-indexed
// bytes (trailing field terminator already excluded).
func decodeFieldData(tag string, data []byte) Field {
	tag = normalizeTag(tag)
	if isControlLike(tag) {
		return NewControlField(tag, string(data))
	}

	parts := splitOnSubfieldIndicator(data)
	var ind1, ind2 byte = ' ', ' '
	if len(parts) > 0 {
		head := parts[0]
		if len(head) > 0 {
			ind1 = head[0]
		}
		if len(head) > 1 {
			ind2 = head[1]
		}
	}

	var subfields []Subfield
	for _, part := range parts[1:] {
		if len(part) == 0 {
			slog.Default().Warn("marc21: skipping empty subfield", "tag", tag)
			continue
		}
		code := part[0]
		value := part[1:]
		if !utf8.Valid(value) {
			slog.Default().Warn("marc21: skipping subfield with invalid UTF-8", "tag", tag, "code", string(code))
			continue
		}
		subfields = append(subfields, Subfield{Code: code, Value: string(value)})
	}
	return NewDataField(tag, ind1, ind2, subfields)
}

func splitOnSubfieldIndicator(data []byte) [][]byte {
	var parts [][]byte
	start := 0
	for i, b := range data {
		if b == subfieldIndicator {
			parts = append(parts, data[start:i])
			start = i + 1
		}
	}
	parts = append(parts, data[start:])
	return parts
}

// decodeDecimal interprets b as an ASCII decimal number.
func decodeDecimal(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("marc21: empty numeric field")
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("marc21: non-digit byte %q in numeric field", c)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
