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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"

	"buf.build/go/tfexample"
)

func FuzzExample(f *testing.F)         { fuzz(f, tfexample.Example) }
func FuzzSequenceExample(f *testing.F) { fuzz(f, tfexample.SequenceExample) }
func FuzzFeature(f *testing.F)         { fuzz(f, tfexample.Feature) }

// fuzz checks that mutable and hyperpb parsing agree on arbitrary input.
func fuzz(f *testing.F, s tfexample.Symbol) {
	f.Helper()

	ns, err := tfexample.Resolve(tfexample.WithMode(tfexample.ModeBundled))
	require.NoError(f, err)

	seed := ns.NewSequenceExample().
		Int64s("id", 1).
		AppendBytes("tokens", []byte("a"), []byte("b")).
		AppendFloats("weights", 0.5).
		Build()
	data, err := ns.Marshal(seed)
	require.NoError(f, err)
	f.Add(data)
	f.Add([]byte{0x0a, 0x00})
	f.Add([]byte{})
	// A Feature that switches from bytes_list to float_list.
	f.Add([]byte("\x0a\x04\x0a\x02ab\x12\x06\x0a\x04\x00\x00\x00\x3f"))

	f.Fuzz(func(t *testing.T, b []byte) {
		m1, err1 := ns.Unmarshal(s, b)
		m2, err2 := ns.Parse(s, b)
		if err1 != nil {
			require.Error(t, err2, "unmarshal error: %v", err1)
			return
		}
		require.NoError(t, err2)
		require.Empty(t, cmp.Diff(m1, m2, protocmp.Transform(), cmpopts.EquateNaNs()))
	})
}
