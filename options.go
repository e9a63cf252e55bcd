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
	"google.golang.org/protobuf/reflect/protoregistry"
)

// Option is a configuration setting for [Resolve].
type Option struct{ apply func(*options) }

type options struct {
	files  *protoregistry.Files
	types  *protoregistry.Types
	mode   Mode
	source *Source
}

// WithFiles sets the registry searched for upstream definitions. Defaults to
// [protoregistry.GlobalFiles].
func WithFiles(files *protoregistry.Files) Option {
	return Option{func(o *options) { o.files = files }}
}

// WithTypes sets the registry searched for generated message types matching
// upstream descriptors. Defaults to [protoregistry.GlobalTypes].
//
// Passing nil makes every resolved type a dynamic message.
func WithTypes(types *protoregistry.Types) Option {
	return Option{func(o *options) { o.types = types }}
}

// WithMode selects which sources [Resolve] may use. Defaults to [ModeAuto].
func WithMode(mode Mode) Option {
	return Option{func(o *options) { o.mode = mode }}
}

// WithSource resolves against src directly, skipping source discovery.
//
// This is mostly useful for tests and for programs that load the Example
// schema from somewhere unusual.
func WithSource(src Source) Option {
	return Option{func(o *options) { o.source = &src }}
}

func newOptions(opts []Option) options {
	o := options{
		files: protoregistry.GlobalFiles,
		types: protoregistry.GlobalTypes,
		mode:  ModeAuto,
	}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}
	return o
}
