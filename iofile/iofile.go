// Package iofile implements the small file-oriented collaborator that
// marc21's codecs are consumed through: extension classification,
// existence checking, and an injectable fail channel. Command-line
// front-ends, prompts, and batch drivers built on top of it are out of
// scope (spec §1); this package only exposes the interface they require.
package iofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Role distinguishes an input path (must already exist, extension drawn
// from the readers) from an output path (extension drawn from the
// writers; existence is not required).
type Role int

const (
	RoleInput Role = iota
	RoleOutput
)

var (
	inputExtensions  = map[string]bool{".txt": true, ".prn": true, ".xml": true}
	outputExtensions = map[string]bool{".lex": true, ".xml": true}
)

// ErrUnknownExtension is returned when a path's extension does not match
// any extension recognized for its role.
var ErrUnknownExtension = errors.New("iofile: unrecognized file extension")

// ErrNotFound is returned when an input path does not exist.
var ErrNotFound = errors.New("iofile: file does not exist")

// FailFunc reports a fatal path error to the user. The core treats it as
// an injected collaborator (§6); DefaultFail, which prints the message
// and terminates without waiting for user input, is only the default.
type FailFunc func(message string)

// DefaultFail writes message to stderr and terminates the process.
func DefaultFail(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}

// Spec describes one file path an external collaborator wants to read
// from or write to.
type Spec struct {
	Path string
	Role Role
	Fail FailFunc
}

// NewSpec builds a Spec. A nil fail defaults to DefaultFail.
func NewSpec(path string, role Role, fail FailFunc) *Spec {
	if fail == nil {
		fail = DefaultFail
	}
	return &Spec{Path: path, Role: role, Fail: fail}
}

// Classify returns the path's lower-cased extension if it is valid for
// this Spec's role, or ErrUnknownExtension otherwise.
func (s *Spec) Classify() (string, error) {
	ext := strings.ToLower(filepath.Ext(s.Path))
	valid := inputExtensions
	if s.Role == RoleOutput {
		valid = outputExtensions
	}
	if !valid[ext] {
		return "", fmt.Errorf("%s: %w", s.Path, ErrUnknownExtension)
	}
	return ext, nil
}

// Verify classifies the path and, for input roles, confirms it exists.
// On failure it invokes Fail with a human-readable message before
// returning the error.
func (s *Spec) Verify() error {
	if _, err := s.Classify(); err != nil {
		s.Fail(err.Error())
		return err
	}
	if s.Role == RoleInput {
		if _, err := os.Stat(s.Path); err != nil {
			wrapped := fmt.Errorf("%s: %w", s.Path, ErrNotFound)
			s.Fail(wrapped.Error())
			return wrapped
		}
	}
	return nil
}
