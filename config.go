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

	"github.com/caarlos0/env/v11"
)

// Mode controls which sources [Resolve] may use.
type Mode int

const (
	// ModeAuto prefers upstream definitions and falls back to the bundled
	// schema.
	ModeAuto Mode = iota
	// ModePreferred requires upstream definitions.
	ModePreferred
	// ModeBundled always uses the bundled schema.
	ModeBundled
)

var modeNames = [...]string{
	ModeAuto:      "auto",
	ModePreferred: "preferred",
	ModeBundled:   "bundled",
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if string(text) == name {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("tfexample: invalid source mode %q, want one of %q", text, modeNames)
}

// Config is the environment configuration consulted by [Default].
type Config struct {
	// Mode selects the message source: auto, preferred, or bundled.
	Mode Mode `env:"TFEXAMPLE_SOURCE" envDefault:"auto"`
}

// ConfigFromEnv reads a [Config] from the process environment.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("tfexample: reading environment: %w", err)
	}
	return cfg, nil
}

// Options converts this configuration into options for [Resolve].
func (c Config) Options() []Option {
	return []Option{WithMode(c.Mode)}
}
