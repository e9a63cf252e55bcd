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
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoregistry"

	"buf.build/go/tfexample"
	"buf.build/go/tfexample/internal/corpus"
)

func verbose() bool {
	return flag.Lookup("test.v").Value.String() == "true"
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	for name, files := range map[string]*protoregistry.Files{
		"bundled":  new(protoregistry.Files),
		"upstream": corpus.Upstream(t, nil),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ns, err := tfexample.Resolve(tfexample.WithFiles(files))
			require.NoError(t, err)

			corpus.RunAll(t, ns, func(t *testing.T, test *corpus.TestCase) {
				t.Helper()
				test.Run(t, ns, verbose())
			})
		})
	}
}
