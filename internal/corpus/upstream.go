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

package corpus

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"buf.build/go/tfexample"
	"buf.build/go/tfexample/internal/bundled"
)

// Upstream builds a file registry laid out like TensorFlow's generated code:
// value types in feature.proto, Example and SequenceExample in example.proto,
// which imports feature.proto.
//
// edit, if not nil, may rearrange the two files before they are linked.
func Upstream(t testing.TB, edit func(feature, example *descriptorpb.FileDescriptorProto)) *protoregistry.Files {
	t.Helper()

	base, err := bundled.FileProto()
	require.NoError(t, err)

	feature := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(tfexample.UpstreamFeaturePath),
		Package: base.Package,
		Syntax:  base.Syntax,
	}
	example := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(tfexample.UpstreamExamplePath),
		Package:    base.Package,
		Syntax:     base.Syntax,
		Dependency: []string{tfexample.UpstreamFeaturePath},
	}
	for _, md := range base.MessageType {
		switch md.GetName() {
		case "Example", "SequenceExample":
			example.MessageType = append(example.MessageType, md)
		default:
			feature.MessageType = append(feature.MessageType, md)
		}
	}

	if edit != nil {
		edit(feature, example)
	}

	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{feature, example},
	})
	require.NoError(t, err)
	return files
}

// MoveMessage moves the top-level message name from one file to another.
func MoveMessage(t testing.TB, from, to *descriptorpb.FileDescriptorProto, name string) {
	t.Helper()

	md := RemoveMessage(t, from, name)
	to.MessageType = append(to.MessageType, md)
}

// RemoveMessage deletes the top-level message name from file and returns it.
func RemoveMessage(t testing.TB, file *descriptorpb.FileDescriptorProto, name string) *descriptorpb.DescriptorProto {
	t.Helper()

	i := slices.IndexFunc(file.MessageType, func(md *descriptorpb.DescriptorProto) bool {
		return md.GetName() == name
	})
	require.GreaterOrEqual(t, i, 0, "no message %q in %q", name, file.GetName())

	md := file.MessageType[i]
	file.MessageType = slices.Delete(file.MessageType, i, i+1)
	return md
}
