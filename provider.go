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
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Provider is a candidate namespace that may define some of the Example
// family's message types.
type Provider interface {
	// Lookup returns the message type this provider defines for s, if any.
	Lookup(s Symbol) (protoreflect.MessageType, bool)

	// File returns the file descriptor backing this provider.
	File() protoreflect.FileDescriptor
}

// FileProvider is a [Provider] backed by the top-level messages of a single
// .proto file.
type FileProvider struct {
	file  protoreflect.FileDescriptor
	types map[protoreflect.Name]protoreflect.MessageType
}

// NewFileProvider builds a provider for the top-level messages of file.
//
// If types is non-nil and contains a message type whose descriptor is the
// one declared in file, that type is used, so that generated Go structs are
// returned rather than dynamic messages. Otherwise, a [dynamicpb] type is
// built from the descriptor.
func NewFileProvider(file protoreflect.FileDescriptor, types *protoregistry.Types) *FileProvider {
	p := &FileProvider{
		file:  file,
		types: make(map[protoreflect.Name]protoreflect.MessageType),
	}

	msgs := file.Messages()
	for i := range msgs.Len() {
		md := msgs.Get(i)
		p.types[md.Name()] = messageTypeFor(md, types)
	}
	return p
}

// Lookup implements [Provider].
func (p *FileProvider) Lookup(s Symbol) (protoreflect.MessageType, bool) {
	mt, ok := p.types[s.Name()]
	return mt, ok
}

// File implements [Provider].
func (p *FileProvider) File() protoreflect.FileDescriptor {
	return p.file
}

func messageTypeFor(md protoreflect.MessageDescriptor, types *protoregistry.Types) protoreflect.MessageType {
	if types != nil {
		mt, err := types.FindMessageByName(md.FullName())
		if err == nil && mt.Descriptor() == md {
			return mt
		}
	}
	return dynamicpb.NewMessageType(md)
}
