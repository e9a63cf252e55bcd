// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tfexample

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrUnavailable is returned when the preferred upstream definitions are
	// not linked into the process.
	ErrUnavailable = errors.New("tfexample: upstream definitions unavailable")

	// ErrNoSource is returned when no usable source of message types exists.
	ErrNoSource = errors.New("tfexample: no message source")

	// ErrMissingSymbol is returned when a source defines a symbol in neither
	// of its namespaces.
	ErrMissingSymbol = errors.New("tfexample: missing message type")

	// ErrConflict is returned when publishing a namespace into a registry
	// that already holds a different type under the same name.
	ErrConflict = errors.New("tfexample: conflicting message type")

	// ErrUnknownSymbol is returned for a [Symbol] outside the Example family.
	ErrUnknownSymbol = errors.New("tfexample: unknown symbol")

	// ErrKindMismatch is returned when a Feature's values do not match the
	// list type selected by its oneof.
	ErrKindMismatch = errors.New("tfexample: feature value kind mismatch")
)

// UnavailableError is returned by [PreferredSource] when an upstream file is
// not registered.
type UnavailableError struct {
	Path string // The file that could not be found.
	Err  error  // The registry's error.
}

// Error implements [error].
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrUnavailable, e.Path, e.Err)
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *UnavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// MissingSymbolError is returned by [Resolve] when the selected source does
// not define one of the nine required message types.
type MissingSymbolError struct {
	Symbol Symbol
	Origin Origin

	// The files that were searched, feature file first.
	Searched []protoreflect.FileDescriptor
}

// Error implements [error].
func (e *MissingSymbolError) Error() string {
	paths := make([]string, 0, len(e.Searched))
	for _, fd := range e.Searched {
		if fd != nil {
			paths = append(paths, fd.Path())
		}
	}
	return fmt.Sprintf("%v: %s source does not define %s (searched %q)",
		ErrMissingSymbol, e.Origin, e.Symbol, paths)
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *MissingSymbolError) Unwrap() error {
	return ErrMissingSymbol
}

// ConflictError is returned by [Namespace.Register].
type ConflictError struct {
	Name protoreflect.FullName
}

// Error implements [error].
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s is already registered with another descriptor", ErrConflict, e.Name)
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// KindMismatchError is returned by [ReadFeatures] and [ReadFeatureLists] when
// a value of a Feature's list has the wrong type.
type KindMismatchError struct {
	Field protoreflect.FullName // The oneof case that was set.
	Index int
	Got   any
}

// Error implements [error].
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%v: %s[%d] holds %T", ErrKindMismatch, e.Field, e.Index, e.Got)
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}
