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

package tfexample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"buf.build/go/tfexample"
)

func TestReadFeaturesKindMismatch(t *testing.T) {
	t.Parallel()

	// A Feature whose float_list field is declared with a bytes list, so the
	// values it holds do not match its case.
	fdp := new(descriptorpb.FileDescriptorProto)
	require.NoError(t, prototext.Unmarshal([]byte(`
		name: "mismatch.proto"
		package: "mismatch"
		syntax: "proto3"
		message_type {
			name: "BytesList"
			field { name: "value" number: 1 label: LABEL_REPEATED type: TYPE_BYTES json_name: "value" }
		}
		message_type {
			name: "Feature"
			field { name: "float_list" number: 2 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".mismatch.BytesList" oneof_index: 0 json_name: "floatList" }
			oneof_decl { name: "kind" }
		}
		message_type {
			name: "Example"
			field { name: "features" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".mismatch.Features" json_name: "features" }
		}
		message_type {
			name: "Features"
			field { name: "feature" number: 1 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".mismatch.Features.FeatureEntry" json_name: "feature" }
			nested_type {
				name: "FeatureEntry"
				field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING json_name: "key" }
				field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".mismatch.Feature" json_name: "value" }
				options { map_entry: true }
			}
		}
	`), fdp))
	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)

	msg := dynamicpb.NewMessage(fd.Messages().ByName("Example"))
	require.NoError(t, prototext.Unmarshal([]byte(`
		features { feature { key: "k" value { float_list { value: "ab" } } } }
	`), msg))

	_, err = tfexample.ReadFeatures(msg)
	require.ErrorIs(t, err, tfexample.ErrKindMismatch)
	var mismatch *tfexample.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, protoreflect.FullName("mismatch.Feature.float_list"), mismatch.Field)
	assert.Equal(t, 0, mismatch.Index)
	assert.Equal(t, []byte("ab"), mismatch.Got)
}

func TestReadFeaturesNotExample(t *testing.T) {
	t.Parallel()

	ns, err := tfexample.Resolve(tfexample.WithMode(tfexample.ModeBundled))
	require.NoError(t, err)

	_, err = tfexample.ReadFeatures(ns.New(tfexample.Int64List).ProtoReflect())
	require.Error(t, err)
	_, err = tfexample.ReadFeatureLists(ns.New(tfexample.Example).ProtoReflect())
	require.Error(t, err)
}
