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

package bundled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/tfexample/internal/bundled"
)

func TestFile(t *testing.T) {
	t.Parallel()

	fd, err := bundled.File()
	require.NoError(t, err)
	assert.Equal(t, bundled.Path, fd.Path())
	assert.Equal(t, protoreflect.FullName("tensorflow"), fd.Package())
	assert.Equal(t, protoreflect.Proto3, fd.Syntax())

	var names []protoreflect.Name
	for i := range fd.Messages().Len() {
		names = append(names, fd.Messages().Get(i).Name())
	}
	assert.Equal(t, []protoreflect.Name{
		"BytesList", "FloatList", "Int64List",
		"Feature", "Features",
		"FeatureList", "FeatureLists",
		"Example", "SequenceExample",
	}, names)

	features := fd.Messages().ByName("Features").Fields().ByName("feature")
	require.NotNil(t, features)
	assert.True(t, features.IsMap())
	assert.Equal(t, protoreflect.FullName("tensorflow.Feature"), features.MapValue().Message().FullName())

	kind := fd.Messages().ByName("Feature").Oneofs().ByName("kind")
	require.NotNil(t, kind)
	assert.Equal(t, 3, kind.Fields().Len())

	// Repeated scalars are packed, matching upstream.
	assert.True(t, fd.Messages().ByName("FloatList").Fields().ByName("value").IsPacked())
}

func TestFileStable(t *testing.T) {
	t.Parallel()

	a, err := bundled.File()
	require.NoError(t, err)
	b, err := bundled.File()
	require.NoError(t, err)
	assert.Same(t, a, b)

	p1, err := bundled.FileProto()
	require.NoError(t, err)
	p2, err := bundled.FileProto()
	require.NoError(t, err)
	assert.NotSame(t, p1, p2)
	assert.Equal(t, bundled.Path, p1.GetName())
}
