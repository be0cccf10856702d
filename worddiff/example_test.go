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

package worddiff_test

import (
	"encoding/json"
	"fmt"

	"tokdiff.io/tokdiff/worddiff"
)

func ExampleDiff() {
	script := worddiff.Diff("the cat sat", "the dog sat")
	out, err := json.Marshal(script)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// [{"text":"the"},{"remove":"cat"},{"add":"dog"},{"text":"sat"}]
}

func ExampleFormat() {
	script := worddiff.Diff("the cat sat", "the dog sat")
	fmt.Println(worddiff.Format(script))
	// Output:
	// the [-cat-] {+dog+} sat
}
