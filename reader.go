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
	"bytes"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Kind is the value type held by a Feature.
type Kind int

const (
	KindNone Kind = iota // The Feature's oneof is unset.
	KindBytes
	KindFloat
	KindInt64
)

var kindNames = [...]string{
	KindNone:  "none",
	KindBytes: "bytes",
	KindFloat: "float",
	KindInt64: "int64",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// FeatureValue is the decoded contents of a Feature. Only the slice that
// matches Kind is populated.
type FeatureValue struct {
	Kind   Kind
	Bytes  [][]byte
	Floats []float32
	Int64s []int64
}

// ReadFeatures decodes the feature map of an Example, or the context
// features of a SequenceExample.
//
// msg may be any implementation of the message, including the read-only
// messages returned by [Namespace.Parse]. Byte values are copied, so the
// result does not alias msg.
func ReadFeatures(msg protoreflect.Message) (map[string]FeatureValue, error) {
	md := msg.Descriptor()
	fd := md.Fields().ByName(fieldFeatures)
	if fd == nil {
		fd = md.Fields().ByName(fieldContext)
	}
	if fd == nil || fd.Message() == nil {
		return nil, fmt.Errorf("tfexample: %s has no features", md.FullName())
	}
	return readFeatureMap(msg.Get(fd).Message())
}

// ReadFeatureLists decodes the feature lists of a SequenceExample, one
// [FeatureValue] per step.
func ReadFeatureLists(msg protoreflect.Message) (map[string][]FeatureValue, error) {
	md := msg.Descriptor()
	fd := md.Fields().ByName(fieldFeatureLists)
	if fd == nil || fd.Message() == nil {
		return nil, fmt.Errorf("tfexample: %s has no feature lists", md.FullName())
	}
	lists := msg.Get(fd).Message()

	mfd := lists.Descriptor().Fields().ByName(fieldFeatureList)
	if mfd == nil || !mfd.IsMap() {
		return nil, fmt.Errorf("tfexample: %s has no feature_list map", lists.Descriptor().FullName())
	}

	out := make(map[string][]FeatureValue)
	var err error
	lists.Get(mfd).Map().Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		fl := v.Message()
		steps := fl.Get(fl.Descriptor().Fields().ByName(fieldFeature)).List()

		values := make([]FeatureValue, steps.Len())
		for i := range steps.Len() {
			values[i], err = readFeature(steps.Get(i).Message())
			if err != nil {
				return false
			}
		}
		out[k.String()] = values
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readFeatureMap(features protoreflect.Message) (map[string]FeatureValue, error) {
	fd := features.Descriptor().Fields().ByName(fieldFeature)
	if fd == nil || !fd.IsMap() {
		return nil, fmt.Errorf("tfexample: %s has no feature map", features.Descriptor().FullName())
	}

	out := make(map[string]FeatureValue)
	var err error
	features.Get(fd).Map().Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		var fv FeatureValue
		fv, err = readFeature(v.Message())
		out[k.String()] = fv
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readFeature(feature protoreflect.Message) (FeatureValue, error) {
	md := feature.Descriptor()
	od := md.Oneofs().ByName("kind")
	if od == nil {
		return FeatureValue{}, fmt.Errorf("tfexample: %s has no kind oneof", md.FullName())
	}

	set := feature.WhichOneof(od)
	if set == nil {
		return FeatureValue{Kind: KindNone}, nil
	}

	list := feature.Get(set).Message()
	values := list.Get(list.Descriptor().Fields().ByName(fieldValue)).List()

	var fv FeatureValue
	switch set.Name() {
	case fieldBytesList:
		fv.Kind = KindBytes
		fv.Bytes = make([][]byte, values.Len())
	case fieldFloatList:
		fv.Kind = KindFloat
		fv.Floats = make([]float32, values.Len())
	case fieldInt64List:
		fv.Kind = KindInt64
		fv.Int64s = make([]int64, values.Len())
	default:
		return FeatureValue{}, fmt.Errorf("tfexample: unexpected feature kind %s", set.Name())
	}

	// Each value must match the oneof case.
	for i := range values.Len() {
		switch v := values.Get(i).Interface().(type) {
		case []byte:
			if fv.Kind == KindBytes {
				fv.Bytes[i] = bytes.Clone(v)
				continue
			}
		case float32:
			if fv.Kind == KindFloat {
				fv.Floats[i] = v
				continue
			}
		case int64:
			if fv.Kind == KindInt64 {
				fv.Int64s[i] = v
				continue
			}
		}
		return FeatureValue{}, &KindMismatchError{Field: set.FullName(), Index: i, Got: values.Get(i).Interface()}
	}
	return fv, nil
}
