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

	"google.golang.org/protobuf/reflect/protoregistry"

	"buf.build/go/tfexample/internal/bundled"
)

// Upstream file paths for the Example family, as registered by TensorFlow's
// generated Go code.
const (
	UpstreamExamplePath = "tensorflow/core/example/example.proto"
	UpstreamFeaturePath = "tensorflow/core/example/feature.proto"
)

// Source is a pair of providers: one for the top-level Example messages and
// one for the feature-level value types.
//
// The Feature provider is consulted first for every symbol. A source that
// keeps everything in one file uses the same provider for both.
type Source struct {
	Example Provider
	Feature Provider
}

// PreferredSource looks up the upstream TensorFlow definitions in files.
//
// Returns an error wrapping [ErrUnavailable] if either upstream file is not
// registered.
func PreferredSource(files *protoregistry.Files, types *protoregistry.Types) (Source, error) {
	if files == nil {
		return Source{}, fmt.Errorf("%w: no file registry", ErrUnavailable)
	}

	example, err := files.FindFileByPath(UpstreamExamplePath)
	if err != nil {
		return Source{}, &UnavailableError{Path: UpstreamExamplePath, Err: err}
	}
	feature, err := files.FindFileByPath(UpstreamFeaturePath)
	if err != nil {
		return Source{}, &UnavailableError{Path: UpstreamFeaturePath, Err: err}
	}

	return Source{
		Example: NewFileProvider(example, types),
		Feature: NewFileProvider(feature, types),
	}, nil
}

// BundledSource returns the fallback source shipped with this package.
//
// Both roles are served by the same provider.
func BundledSource() (Source, error) {
	fd, err := bundled.File()
	if err != nil {
		return Source{}, fmt.Errorf("%w: bundled schema: %w", ErrNoSource, err)
	}

	p := NewFileProvider(fd, nil)
	return Source{Example: p, Feature: p}, nil
}

func (s Source) check() error {
	switch {
	case s.Example == nil:
		return fmt.Errorf("%w: source has no example provider", ErrNoSource)
	case s.Feature == nil:
		return fmt.Errorf("%w: source has no feature provider", ErrNoSource)
	case s.Example.File() == nil:
		return fmt.Errorf("%w: example provider has no file descriptor", ErrNoSource)
	}
	return nil
}
