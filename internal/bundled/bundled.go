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

// Package bundled carries the fallback schema for the Example message family,
// used when no upstream definition is linked into the binary.
package bundled

import (
	_ "embed"
	"fmt"
	"sync"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Path is the path the fallback file is registered under.
const Path = "tfexample/example.proto"

//go:embed example.txtpb
var schema []byte

var load = sync.OnceValues(func() (protoreflect.FileDescriptor, error) {
	fds := new(descriptorpb.FileDescriptorSet)
	if err := prototext.Unmarshal(schema, fds); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path, err)
	}
	files, err := protodesc.NewFiles(fds)
	if err != nil {
		return nil, fmt.Errorf("linking %s: %w", Path, err)
	}
	return files.FindFileByPath(Path)
})

// File returns the fallback file descriptor.
//
// The file is private to this package: it is never added to
// [protoregistry.GlobalFiles], so it cannot collide with an upstream
// definition of the same messages.
func File() (protoreflect.FileDescriptor, error) {
	return load()
}

// FileProto returns a fresh copy of the fallback schema as a descriptor proto.
func FileProto() (*descriptorpb.FileDescriptorProto, error) {
	fd, err := File()
	if err != nil {
		return nil, err
	}
	return protodesc.ToFileDescriptorProto(fd), nil
}
