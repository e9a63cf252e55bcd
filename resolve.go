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
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/tfexample/internal/debug"
)

// Origin records which kind of source a [Namespace] was resolved from.
type Origin int

const (
	OriginPreferred Origin = iota // Upstream definitions.
	OriginBundled                 // The bundled fallback schema.
	OriginCustom                  // A source passed with [WithSource].
)

var originNames = [...]string{
	OriginPreferred: "preferred",
	OriginBundled:   "bundled",
	OriginCustom:    "custom",
}

// String implements [fmt.Stringer].
func (o Origin) String() string {
	if o < 0 || int(o) >= len(originNames) {
		return fmt.Sprintf("Origin(%d)", int(o))
	}
	return originNames[o]
}

// Resolve builds a [Namespace] for the Example family.
//
// Upstream definitions are used if they are registered (see [WithFiles]);
// otherwise the bundled schema is used. Each symbol is taken from the
// source's feature provider if it defines it, and from its example provider
// otherwise. If neither defines a symbol, Resolve fails with a
// [*MissingSymbolError] rather than returning a partial namespace.
func Resolve(options ...Option) (*Namespace, error) {
	opts := newOptions(options)

	src, origin, err := acquire(&opts)
	if err != nil {
		return nil, err
	}
	return unify(src, origin)
}

// acquire picks the source to resolve against.
func acquire(opts *options) (Source, Origin, error) {
	if opts.source != nil {
		return *opts.source, OriginCustom, nil
	}

	switch opts.mode {
	case ModeAuto, ModePreferred:
		src, err := PreferredSource(opts.files, opts.types)
		if err == nil {
			debug.Log(nil, "acquire", "using upstream definitions")
			return src, OriginPreferred, nil
		}
		if opts.mode == ModePreferred {
			return Source{}, 0, err
		}
		debug.Log(nil, "acquire", "falling back to bundled schema: %v", err)

	case ModeBundled:
	default:
		return Source{}, 0, fmt.Errorf("%w: invalid mode %v", ErrNoSource, opts.mode)
	}

	src, err := BundledSource()
	if err != nil {
		return Source{}, 0, err
	}
	return src, OriginBundled, nil
}

// unify binds every symbol from src into a new namespace.
func unify(src Source, origin Origin) (*Namespace, error) {
	if err := src.check(); err != nil {
		return nil, err
	}

	ns := &Namespace{
		origin: origin,
		file:   src.Example.File(),
	}
	for _, s := range Symbols() {
		mt, from := lookup(src, s)
		if mt == nil {
			return nil, &MissingSymbolError{
				Symbol:   s,
				Origin:   origin,
				Searched: searched(src),
			}
		}
		debug.Assert(mt.Descriptor().Name() == s.Name(),
			"%v bound to %s", s, mt.Descriptor().FullName())
		debug.Log([]any{"%s", origin}, "unify", "%v -> %s (%s)", s, mt.Descriptor().FullName(), from.Path())

		ns.types[s] = mt
		ns.compiled[s] = sync.OnceValue(func() *compiled { return compile(mt) })
	}
	return ns, nil
}

// lookup queries the feature provider, then the example provider.
func lookup(src Source, s Symbol) (protoreflect.MessageType, protoreflect.FileDescriptor) {
	for _, p := range [...]Provider{src.Feature, src.Example} {
		if mt, ok := p.Lookup(s); ok && mt != nil {
			return mt, p.File()
		}
	}
	return nil, nil
}

func searched(src Source) []protoreflect.FileDescriptor {
	if src.Feature.File() == src.Example.File() {
		return []protoreflect.FileDescriptor{src.Example.File()}
	}
	return []protoreflect.FileDescriptor{src.Feature.File(), src.Example.File()}
}
