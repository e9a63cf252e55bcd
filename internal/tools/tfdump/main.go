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

// tfdump prints a serialized tf.train Example or SequenceExample in a
// readable form.
//
// Usage:
//
//	tfdump [-type example|sequence] [-format protoscope|text|json] [-o out] [file]
//
// Reads from stdin if no file is given. The message types are resolved the
// same way [tfexample.Default] does, so TFEXAMPLE_SOURCE is honoured.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/protocolbuffers/protoscope"
	"golang.org/x/term"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"buf.build/go/tfexample"
)

var (
	msgType = flag.String("type", "example", "message type: 'example' or 'sequence'")
	format  = flag.String("format", "text", "output format: 'protoscope', 'text', or 'json'")
	output  = flag.String("o", "-", "location to dump to; defaults to stdout")
	compact = flag.Bool("compact", false, "single-line output, even on a terminal")
)

func symbolFor(name string) (tfexample.Symbol, error) {
	switch name {
	case "example":
		return tfexample.Example, nil
	case "sequence":
		return tfexample.SequenceExample, nil
	default:
		return 0, fmt.Errorf("invalid value for -type: %q", name)
	}
}

// dump renders msg, whose wire form is data.
func dump(out io.Writer, data []byte, msg proto.Message, multiline bool) error {
	var text []byte
	switch *format {
	case "protoscope":
		text = []byte(protoscope.Write(data, protoscope.WriterOptions{}))
	case "text":
		b, err := prototext.MarshalOptions{Multiline: multiline}.Marshal(msg)
		if err != nil {
			return err
		}
		text = append(b, '\n')
	case "json":
		b, err := protojson.MarshalOptions{Multiline: multiline, UseProtoNames: true}.Marshal(msg)
		if err != nil {
			return err
		}
		text = append(b, '\n')
	default:
		return fmt.Errorf("invalid value for -format: %q", *format)
	}

	_, err := out.Write(text)
	return err
}

func run(path string) (err error) {
	sym, err := symbolFor(*msgType)
	if err != nil {
		return err
	}

	in := os.Stdin
	if path != "" && path != "-" {
		in, err = os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	ns, err := tfexample.Default()
	if err != nil {
		return err
	}
	msg, err := ns.Unmarshal(sym, data)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *output != "-" {
		out, err = os.Create(*output)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, out.Close()) }()
	}

	multiline := !*compact && term.IsTerminal(int(out.Fd()))
	return dump(out, data, msg, multiline)
}

func main() {
	flag.Parse()
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "tfdump:", err)
		os.Exit(1)
	}
}
