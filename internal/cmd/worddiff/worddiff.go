// Copyright 2026 The tokdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// worddiff prints a word-level diff of two text files.
//
// With -color the diff is rendered with ANSI escape sequences, otherwise
// deleted runs are wrapped in [-...-] and inserted runs in {+...+}. With
// -json the raw edit script is printed as a JSON array instead.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tokdiff.io/tokdiff/worddiff"
)

var (
	useColor = flag.Bool("color", false, "render with ANSI colors")
	useJSON  = flag.Bool("json", false, "print the edit script as JSON")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 args, got %v", len(args))
	}

	old, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	script := worddiff.Diff(string(old), string(new))

	switch {
	case *useJSON:
		out, err := json.Marshal(script)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", out)
	case *useColor:
		fmt.Println(worddiff.Terminal(script))
	default:
		fmt.Println(worddiff.Format(script))
	}
	return nil
}
