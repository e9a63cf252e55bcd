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
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Field names of the Example family, shared by upstream and the bundled
// schema.
const (
	fieldValue        protoreflect.Name = "value"
	fieldBytesList    protoreflect.Name = "bytes_list"
	fieldFloatList    protoreflect.Name = "float_list"
	fieldInt64List    protoreflect.Name = "int64_list"
	fieldFeature      protoreflect.Name = "feature"
	fieldFeatureList  protoreflect.Name = "feature_list"
	fieldFeatures     protoreflect.Name = "features"
	fieldContext      protoreflect.Name = "context"
	fieldFeatureLists protoreflect.Name = "feature_lists"
)

// ExampleBuilder builds an Example message one feature at a time.
//
// Setting a key that is already present replaces its value.
type ExampleBuilder struct {
	msg      protoreflect.Message
	features featureMap
}

// NewExample starts a new Example.
func (ns *Namespace) NewExample() *ExampleBuilder {
	msg := ns.types[Example].New()
	return &ExampleBuilder{
		msg:      msg,
		features: featureMap{mutableMap(mutableMessage(msg, fieldFeatures), fieldFeature)},
	}
}

// Bytes sets key to a bytes_list feature.
func (b *ExampleBuilder) Bytes(key string, values ...[]byte) *ExampleBuilder {
	b.features.set(key, KindBytes, bytesValues(values))
	return b
}

// Floats sets key to a float_list feature.
func (b *ExampleBuilder) Floats(key string, values ...float32) *ExampleBuilder {
	b.features.set(key, KindFloat, floatValues(values))
	return b
}

// Int64s sets key to an int64_list feature.
func (b *ExampleBuilder) Int64s(key string, values ...int64) *ExampleBuilder {
	b.features.set(key, KindInt64, int64Values(values))
	return b
}

// Build returns the message built so far. The builder must not be used
// afterwards.
func (b *ExampleBuilder) Build() proto.Message {
	return b.msg.Interface()
}

// SequenceExampleBuilder builds a SequenceExample: a set of context features
// plus named feature lists, each of which gains one Feature per step.
type SequenceExampleBuilder struct {
	msg     protoreflect.Message
	context featureMap
	lists   protoreflect.Map
}

// NewSequenceExample starts a new SequenceExample.
func (ns *Namespace) NewSequenceExample() *SequenceExampleBuilder {
	msg := ns.types[SequenceExample].New()
	return &SequenceExampleBuilder{
		msg:     msg,
		context: featureMap{mutableMap(mutableMessage(msg, fieldContext), fieldFeature)},
		lists:   mutableMap(mutableMessage(msg, fieldFeatureLists), fieldFeatureList),
	}
}

// Bytes sets a bytes_list context feature.
func (b *SequenceExampleBuilder) Bytes(key string, values ...[]byte) *SequenceExampleBuilder {
	b.context.set(key, KindBytes, bytesValues(values))
	return b
}

// Floats sets a float_list context feature.
func (b *SequenceExampleBuilder) Floats(key string, values ...float32) *SequenceExampleBuilder {
	b.context.set(key, KindFloat, floatValues(values))
	return b
}

// Int64s sets an int64_list context feature.
func (b *SequenceExampleBuilder) Int64s(key string, values ...int64) *SequenceExampleBuilder {
	b.context.set(key, KindInt64, int64Values(values))
	return b
}

// AppendBytes appends a bytes_list step to the named feature list.
func (b *SequenceExampleBuilder) AppendBytes(list string, values ...[]byte) *SequenceExampleBuilder {
	b.step(list, KindBytes, bytesValues(values))
	return b
}

// AppendFloats appends a float_list step to the named feature list.
func (b *SequenceExampleBuilder) AppendFloats(list string, values ...float32) *SequenceExampleBuilder {
	b.step(list, KindFloat, floatValues(values))
	return b
}

// AppendInt64s appends an int64_list step to the named feature list.
func (b *SequenceExampleBuilder) AppendInt64s(list string, values ...int64) *SequenceExampleBuilder {
	b.step(list, KindInt64, int64Values(values))
	return b
}

// Build returns the message built so far. The builder must not be used
// afterwards.
func (b *SequenceExampleBuilder) Build() proto.Message {
	return b.msg.Interface()
}

func (b *SequenceExampleBuilder) step(list string, kind Kind, values []protoreflect.Value) {
	key := protoreflect.ValueOfString(list).MapKey()
	fl := b.lists.Mutable(key).Message()
	steps := mutableList(fl, fieldFeature)

	feature := steps.NewElement()
	setFeature(feature.Message(), kind, values)
	steps.Append(feature)
}

// featureMap is the map<string, Feature> inside a Features message.
type featureMap struct {
	m protoreflect.Map
}

func (f featureMap) set(key string, kind Kind, values []protoreflect.Value) {
	feature := f.m.NewValue()
	setFeature(feature.Message(), kind, values)
	f.m.Set(protoreflect.ValueOfString(key).MapKey(), feature)
}

// setFeature populates the oneof of an empty Feature.
func setFeature(feature protoreflect.Message, kind Kind, values []protoreflect.Value) {
	var name protoreflect.Name
	switch kind {
	case KindBytes:
		name = fieldBytesList
	case KindFloat:
		name = fieldFloatList
	case KindInt64:
		name = fieldInt64List
	default:
		return
	}

	list := mutableList(mutableMessage(feature, name), fieldValue)
	for _, v := range values {
		list.Append(v)
	}
}

func mutableMessage(msg protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	return msg.Mutable(msg.Descriptor().Fields().ByName(name)).Message()
}

func mutableMap(msg protoreflect.Message, name protoreflect.Name) protoreflect.Map {
	return msg.Mutable(msg.Descriptor().Fields().ByName(name)).Map()
}

func mutableList(msg protoreflect.Message, name protoreflect.Name) protoreflect.List {
	return msg.Mutable(msg.Descriptor().Fields().ByName(name)).List()
}

func bytesValues(in [][]byte) []protoreflect.Value {
	out := make([]protoreflect.Value, len(in))
	for i, v := range in {
		out[i] = protoreflect.ValueOfBytes(v)
	}
	return out
}

func floatValues(in []float32) []protoreflect.Value {
	out := make([]protoreflect.Value, len(in))
	for i, v := range in {
		out[i] = protoreflect.ValueOfFloat32(v)
	}
	return out
}

func int64Values(in []int64) []protoreflect.Value {
	out := make([]protoreflect.Value, len(in))
	for i, v := range in {
		out[i] = protoreflect.ValueOfInt64(v)
	}
	return out
}
