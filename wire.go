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
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// maxCanonicalDepth bounds the recursion of [canonical]. Deeper input is
// reported as non-canonical and left to the reference parser.
const maxCanonicalDepth = 64

// canonical reports whether data, a serialized md, is in the shape that
// hyperpb parses faithfully.
//
// Two constructs are valid on the wire but are not: a oneof whose case
// changes within one message (a Feature carrying bytes_list and then
// float_list), and a singular message field that occurs more than once and
// so must be merged. Malformed input is also reported as non-canonical, so
// that the reference parser produces the error.
func canonical(md protoreflect.MessageDescriptor, data []byte, depth int) bool {
	if depth > maxCanonicalDepth {
		return false
	}

	type oneofCase struct {
		oneof protoreflect.OneofDescriptor
		num   protoreflect.FieldNumber
	}
	var cases []oneofCase
	var singular []protoreflect.FieldNumber

	fields := md.Fields()
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return false
		}
		data = data[n:]

		fd := fields.ByNumber(num)
		if fd == nil {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return false
			}
			data = data[n:]
			continue
		}

		if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
			seen := false
			for _, c := range cases {
				if c.oneof != od {
					continue
				}
				if c.num != num {
					return false
				}
				seen = true
			}
			if !seen {
				cases = append(cases, oneofCase{od, num})
			}
		}

		if fd.Message() == nil || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return false
			}
			data = data[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return false
		}
		data = data[n:]

		if fd.Cardinality() != protoreflect.Repeated {
			for _, prev := range singular {
				if prev == num {
					return false
				}
			}
			singular = append(singular, num)
		}
		if !canonical(fd.Message(), v, depth+1) {
			return false
		}
	}
	return true
}
