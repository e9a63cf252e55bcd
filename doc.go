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

// Package tfexample resolves the tf.train Example message family for
// programs that read and write TFRecord data.
//
// The family is nine message types, [BytesList] through [SequenceExample].
// They may come from two places:
//
//   - Upstream TensorFlow definitions linked into the binary, which register
//     tensorflow/core/example/feature.proto and example.proto with the
//     protobuf runtime. These are preferred, since their descriptors cannot be
//     registered twice.
//   - A fallback schema bundled with this package, used whenever upstream
//     definitions are absent.
//
// Call [Resolve] once at startup and pass the returned [Namespace] to
// whatever needs it, or use [Default] for a process-wide handle. A Namespace
// never changes after it is built.
//
//	ns, err := tfexample.Resolve()
//	if err != nil {
//		return err
//	}
//	msg := ns.NewExample().
//		Bytes("label", []byte("cat")).
//		Floats("score", 0.9).
//		Build()
//	data, err := ns.Marshal(msg)
//
// Parsing can either produce mutable messages ([Namespace.Unmarshal]) or
// read-only ones backed by hyperpb ([Namespace.Parse]), which are much
// faster to decode in bulk.
package tfexample
