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

// Package corpus holds the specimen corpus used to test Example parsing,
// and fixtures that imitate upstream TensorFlow registrations.
package corpus

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"gopkg.in/yaml.v3"

	"buf.build/go/tfexample"
	"buf.build/go/tfexample/internal/debug"
)

//go:embed *.yaml
var corpus embed.FS

// TestCase is a test case from the specimen corpus.
type TestCase struct {
	Name string `yaml:"-"`

	TypeName string           `yaml:"type"`
	Symbol   tfexample.Symbol `yaml:"-"`

	// If set, every specimen must fail to parse.
	Invalid bool `yaml:"invalid"`

	// Three ways to encode the test: hex, textproto, and protoscope
	Hex        []string `yaml:"hex"`
	TextProto  []string `yaml:"textproto"`
	Protoscope []string `yaml:"protoscope"`

	// Expected decoded contents. Features are the Example's features or the
	// SequenceExample's context.
	Features     map[string]Feature   `yaml:"features"`
	FeatureLists map[string][]Feature `yaml:"feature_lists"`

	Specimens [][]byte `yaml:"-"`
}

// Feature is the expected value of a single Feature.
type Feature struct {
	Kind   string    `yaml:"kind"`
	Bytes  []string  `yaml:"bytes"`
	Floats []float32 `yaml:"floats"`
	Int64s []int64   `yaml:"int64s"`
}

// Value converts f into the form returned by [tfexample.ReadFeatures].
func (f Feature) Value(t testing.TB) tfexample.FeatureValue {
	t.Helper()

	switch f.Kind {
	case "none":
		return tfexample.FeatureValue{Kind: tfexample.KindNone}
	case "bytes":
		v := tfexample.FeatureValue{Kind: tfexample.KindBytes, Bytes: make([][]byte, len(f.Bytes))}
		for i, b := range f.Bytes {
			v.Bytes[i] = []byte(b)
		}
		return v
	case "float":
		return tfexample.FeatureValue{Kind: tfexample.KindFloat, Floats: append(make([]float32, 0, len(f.Floats)), f.Floats...)}
	case "int64":
		return tfexample.FeatureValue{Kind: tfexample.KindInt64, Int64s: append(make([]int64, 0, len(f.Int64s)), f.Int64s...)}
	default:
		require.Failf(t, "invalid feature kind", "%q", f.Kind)
		return tfexample.FeatureValue{}
	}
}

// RunAll runs every test case in the corpus, decoding specimens with ns.
func RunAll(t *testing.T, ns *tfexample.Namespace, f func(*testing.T, *TestCase)) {
	t.Helper()

	err := fs.WalkDir(corpus, ".", func(p string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", p)
		if d.IsDir() || path.Ext(p) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimSuffix(p, ".yaml"), func(t *testing.T) {
			t.Parallel()

			data, err := fs.ReadFile(corpus, p)
			require.NoError(t, err, "loading test %q", p)
			f(t, parseTestCase(t, ns, p, data))
		})
		return nil
	})
	require.NoError(t, err)
}

// Run checks every specimen of this test case against ns.
//
// Each specimen is parsed both into a mutable message and into a hyperpb
// message; the two must agree, must match the expected features, and the
// mutable message must survive a marshal round trip.
func (test *TestCase) Run(t *testing.T, ns *tfexample.Namespace, verbose bool) {
	t.Helper()

	run := func(t *testing.T, specimen []byte) {
		t.Helper()
		defer debug.WithTesting(t)()

		m1, err1 := ns.Unmarshal(test.Symbol, specimen)
		m2, err2 := ns.Parse(test.Symbol, specimen)
		if verbose {
			t.Logf("unmarshal: %v, parse: %v", err1, err2)
		}

		if test.Invalid {
			require.Error(t, err1)
			require.Error(t, err2)
			return
		}
		require.NoError(t, err1)
		require.NoError(t, err2)

		require.Empty(t, cmp.Diff(m1, m2, protocmp.Transform()), "parsers disagree")

		if verbose {
			options := protojson.MarshalOptions{Multiline: true, UseProtoNames: true}
			b, _ := options.Marshal(m1)
			t.Logf("message: %s", b)
		}

		for _, msg := range []proto.Message{m1, m2} {
			if test.Features != nil {
				got, err := tfexample.ReadFeatures(msg.ProtoReflect())
				require.NoError(t, err)
				want := make(map[string]tfexample.FeatureValue, len(test.Features))
				for k, v := range test.Features {
					want[k] = v.Value(t)
				}
				require.Equal(t, want, got)
			}

			if test.FeatureLists != nil {
				got, err := tfexample.ReadFeatureLists(msg.ProtoReflect())
				require.NoError(t, err)
				want := make(map[string][]tfexample.FeatureValue, len(test.FeatureLists))
				for k, steps := range test.FeatureLists {
					want[k] = make([]tfexample.FeatureValue, len(steps))
					for i, v := range steps {
						want[k][i] = v.Value(t)
					}
				}
				require.Equal(t, want, got)
			}
		}

		data, err := ns.Marshal(m1)
		require.NoError(t, err)
		m3, err := ns.Unmarshal(test.Symbol, data)
		require.NoError(t, err)
		require.True(t, proto.Equal(m1, m3), "round trip changed the message")
	}

	if len(test.Specimens) == 1 {
		run(t, test.Specimens[0])
		return
	}

	for _, specimen := range test.Specimens {
		t.Run("", func(t *testing.T) {
			t.Parallel()
			run(t, specimen)
		})
	}
}

// parseTestCase parses a single test case from the given data.
//
// This will call t.FailNow() if loading fails.
func parseTestCase(t testing.TB, ns *tfexample.Namespace, path string, file []byte) *TestCase {
	t.Helper()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	test := new(TestCase)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(test), "loading test %q", path)

	test.Name = strings.TrimSuffix(path, ".yaml")
	found := false
	for _, s := range tfexample.Symbols() {
		if s.String() == test.TypeName {
			test.Symbol, found = s, true
		}
	}
	require.True(t, found, "unknown type %q in %q", test.TypeName, path)

	for _, raw := range test.Hex {
		r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
		b, err := hex.DecodeString(r.Replace(raw))
		require.NoError(t, err, "loading test %q", path)

		test.Specimens = append(test.Specimens, b)
	}

	for _, raw := range test.TextProto {
		m := ns.New(test.Symbol)
		require.NoError(t, prototext.Unmarshal([]byte(raw), m), "loading test %q", path)

		b, err := ns.Marshal(m)
		require.NoError(t, err, "loading test %q", path)

		test.Specimens = append(test.Specimens, b)
	}

	for _, raw := range test.Protoscope {
		b, err := protoscope.NewScanner(raw).Exec()
		require.NoError(t, err, "loading test %q", path)

		test.Specimens = append(test.Specimens, b)
	}

	require.NotEmpty(t, test.Specimens, "no specimens in %q", path)
	return test
}
