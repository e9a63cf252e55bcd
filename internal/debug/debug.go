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

//go:build debug

// Package debug includes debugging helpers.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

var (
	debugPattern *regexp.Regexp
	nocapture    = flag.Bool("tfexample.nocapture", false, "disables capturing debug logs as test logs")

	tls = routine.NewThreadLocal[testing.TB]()
)

func init() {
	flag.Func("tfexample.filter", "regexp to filter debug logs by", func(s string) (err error) {
		debugPattern, err = regexp.Compile(s)
		return err
	})
}

// Log prints debugging information to stderr, or to the test registered with
// [WithTesting] on the calling goroutine.
//
// context is optional args for `fmt.Printf` that are printed before
// operation, so that related operations can be grouped together.
func Log(context []any, operation string, format string, args ...any) {
	pc, file, line, _ := runtime.Caller(1)

	pkg := runtime.FuncForPC(pc).Name()
	pkg = strings.TrimPrefix(pkg, "buf.build/go/")
	pkg = strings.TrimPrefix(pkg, "tfexample/internal/")
	if i := strings.Index(pkg, "."); i >= 0 {
		pkg = pkg[:i]
	}

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, filepath.Base(file), line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if debugPattern != nil && !debugPattern.MatchString(buf.String()) {
		return
	}

	if t := tls.Get(); !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.WriteString("\n")
	_, _ = os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("tfexample: internal assertion failed: "+format, args...))
	}
}

// WithTesting routes logs from the current goroutine into t until the
// returned function is called.
func WithTesting(t testing.TB) (restore func()) {
	prev := tls.Get()
	tls.Set(t)
	return func() { tls.Set(prev) }
}
