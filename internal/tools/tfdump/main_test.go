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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/tfexample"
)

func TestDump(t *testing.T) {
	ns, err := tfexample.Resolve(tfexample.WithMode(tfexample.ModeBundled))
	require.NoError(t, err)

	msg := ns.NewExample().Bytes("label", []byte("cat")).Build()
	data, err := ns.Marshal(msg)
	require.NoError(t, err)

	tests := []struct {
		format string
		want   []string
	}{
		{"protoscope", []string{"1: {", `"label"`, `"cat"`}},
		{"text", []string{"features", "bytes_list", `"cat"`}},
		{"json", []string{`"features"`, `"bytes_list"`, `"Y2F0"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			*format = tt.format
			t.Cleanup(func() { *format = "text" })

			out := new(bytes.Buffer)
			require.NoError(t, dump(out, data, msg, false))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}

	*format = "yaml"
	t.Cleanup(func() { *format = "text" })
	require.Error(t, dump(new(bytes.Buffer), data, msg, false))
}

func TestSymbolFor(t *testing.T) {
	s, err := symbolFor("sequence")
	require.NoError(t, err)
	assert.Equal(t, tfexample.SequenceExample, s)

	_, err = symbolFor("tensor")
	require.Error(t, err)
}
