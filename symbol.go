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
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Symbol names one of the message types in the Example family.
type Symbol int

// The message types a [Namespace] must provide, in resolution order.
const (
	BytesList Symbol = iota
	FloatList
	Int64List
	Feature
	Features
	FeatureList
	FeatureLists
	Example
	SequenceExample

	numSymbols
)

var symbolNames = [...]protoreflect.Name{
	BytesList:       "BytesList",
	FloatList:       "FloatList",
	Int64List:       "Int64List",
	Feature:         "Feature",
	Features:        "Features",
	FeatureList:     "FeatureList",
	FeatureLists:    "FeatureLists",
	Example:         "Example",
	SequenceExample: "SequenceExample",
}

// Symbols returns every symbol, in resolution order.
func Symbols() []Symbol {
	out := make([]Symbol, numSymbols)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Name returns the unqualified message name for this symbol.
func (s Symbol) Name() protoreflect.Name {
	if !s.valid() {
		return ""
	}
	return symbolNames[s]
}

// String implements [fmt.Stringer].
func (s Symbol) String() string {
	if !s.valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return string(symbolNames[s])
}

func (s Symbol) valid() bool {
	return s >= 0 && s < numSymbols
}
