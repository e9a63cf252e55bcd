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
	"sync"

	"buf.build/go/hyperpb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"buf.build/go/tfexample/internal/debug"
)

// Namespace is the resolved Example family: one message type per [Symbol],
// plus the file descriptor of the top-level Example messages.
//
// A Namespace is immutable and safe for concurrent use.
type Namespace struct {
	origin   Origin
	file     protoreflect.FileDescriptor
	types    [numSymbols]protoreflect.MessageType
	compiled [numSymbols]func() *compiled
}

// compiled is a lazily built hyperpb type.
type compiled struct {
	ty  *hyperpb.MessageType
	err error
}

func compile(mt protoreflect.MessageType) (c *compiled) {
	c = new(compiled)
	defer func() {
		// The compiler panics on descriptors that exceed its internal limits.
		if r := recover(); r != nil {
			c.ty = nil
			c.err = fmt.Errorf("tfexample: compiling %s: %v", mt.Descriptor().FullName(), r)
		}
	}()
	c.ty = hyperpb.CompileMessageDescriptor(mt.Descriptor())
	return c
}

// Origin returns the kind of source this namespace was resolved from.
func (ns *Namespace) Origin() Origin { return ns.origin }

// Descriptor returns the file descriptor of the top-level Example messages.
//
// This is always the example provider's file, even when individual message
// types came from the feature provider.
func (ns *Namespace) Descriptor() protoreflect.FileDescriptor { return ns.file }

// Lookup returns the message type bound to s.
func (ns *Namespace) Lookup(s Symbol) (protoreflect.MessageType, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	return ns.types[s], nil
}

// BytesList returns the type bound to [BytesList].
func (ns *Namespace) BytesList() protoreflect.MessageType { return ns.types[BytesList] }

// FloatList returns the type bound to [FloatList].
func (ns *Namespace) FloatList() protoreflect.MessageType { return ns.types[FloatList] }

// Int64List returns the type bound to [Int64List].
func (ns *Namespace) Int64List() protoreflect.MessageType { return ns.types[Int64List] }

// Feature returns the type bound to [Feature].
func (ns *Namespace) Feature() protoreflect.MessageType { return ns.types[Feature] }

// Features returns the type bound to [Features].
func (ns *Namespace) Features() protoreflect.MessageType { return ns.types[Features] }

// FeatureList returns the type bound to [FeatureList].
func (ns *Namespace) FeatureList() protoreflect.MessageType { return ns.types[FeatureList] }

// FeatureLists returns the type bound to [FeatureLists].
func (ns *Namespace) FeatureLists() protoreflect.MessageType { return ns.types[FeatureLists] }

// Example returns the type bound to [Example].
func (ns *Namespace) Example() protoreflect.MessageType { return ns.types[Example] }

// SequenceExample returns the type bound to [SequenceExample].
func (ns *Namespace) SequenceExample() protoreflect.MessageType { return ns.types[SequenceExample] }

// New returns a new, empty message of the type bound to s.
//
// Panics if s is not a valid symbol.
func (ns *Namespace) New(s Symbol) proto.Message {
	if !s.valid() {
		panic(fmt.Errorf("%w: %v", ErrUnknownSymbol, s))
	}
	return ns.types[s].New().Interface()
}

// Marshal serializes msg. Map entries are written in a deterministic order,
// so equal messages produce equal bytes.
func (ns *Namespace) Marshal(msg proto.Message) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(msg)
}

// Unmarshal parses data into a new mutable message of the type bound to s.
func (ns *Namespace) Unmarshal(s Symbol, data []byte) (proto.Message, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	msg := ns.New(s)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("tfexample: parsing %v: %w", s, err)
	}
	return msg, nil
}

// Parse parses data into a new message of the type bound to s, which must
// be treated as read-only.
//
// Usually the message is a [*hyperpb.Message], which is considerably faster
// than [Namespace.Unmarshal] for large batches but does not support
// mutation. The hyperpb type is compiled on first use and cached.
//
// hyperpb does not resolve a oneof whose case changes partway through a
// message, nor a singular message field that must be merged from several
// occurrences. Such input is valid, and Parse detects it and falls back to
// [Namespace.Unmarshal].
func (ns *Namespace) Parse(s Symbol, data []byte) (proto.Message, error) {
	ty, err := ns.Compiled(s)
	if err != nil {
		return nil, err
	}
	if !canonical(ty.Descriptor(), data, 0) {
		debug.Log(nil, "parse", "%v: non-canonical input, using Unmarshal", s)
		return ns.Unmarshal(s, data)
	}

	msg := hyperpb.NewMessage(ty)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("tfexample: parsing %v: %w", s, err)
	}
	return msg, nil
}

// Compiled returns the hyperpb type compiled for the type bound to s.
func (ns *Namespace) Compiled(s Symbol) (*hyperpb.MessageType, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	c := ns.compiled[s]()
	return c.ty, c.err
}

// Register publishes every message type in this namespace into types under
// its full name, so that name-based lookups (such as resolving an Any, or
// protojson) find it.
//
// Types that are already registered with the same descriptor are skipped,
// so calling Register repeatedly is harmless. If a different descriptor is
// registered under one of the names, Register returns a [*ConflictError]
// and registers nothing.
//
// A nil types registers into [protoregistry.GlobalTypes].
func (ns *Namespace) Register(types *protoregistry.Types) error {
	if types == nil {
		types = protoregistry.GlobalTypes
	}

	var pending []protoreflect.MessageType
	for _, mt := range ns.types {
		name := mt.Descriptor().FullName()
		prev, err := types.FindMessageByName(name)
		switch {
		case errors.Is(err, protoregistry.NotFound):
			pending = append(pending, mt)
		case err != nil:
			return fmt.Errorf("tfexample: registering %s: %w", name, err)
		case prev.Descriptor() != mt.Descriptor():
			return &ConflictError{Name: name}
		}
	}

	for _, mt := range pending {
		if err := types.RegisterMessage(mt); err != nil {
			return fmt.Errorf("tfexample: registering %s: %w", mt.Descriptor().FullName(), err)
		}
	}
	return nil
}

var defaultNamespace = sync.OnceValues(func() (*Namespace, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return Resolve(cfg.Options()...)
})

// Default returns the process-wide namespace.
//
// It is resolved on first call, from the global protobuf registries and the
// configuration returned by [ConfigFromEnv]. Every later call returns the
// same namespace, or the same error.
func Default() (*Namespace, error) {
	return defaultNamespace()
}
