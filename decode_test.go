// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gcide

import (
	"bytes"
	"testing"
)

func TestDecodeLenientValidUTF8Unchanged(t *testing.T) {
	src := []byte("hello, café")
	got := DecodeLenient(src)
	if !bytes.Equal(got, src) {
		t.Errorf("DecodeLenient(valid) = %q; want unchanged %q", got, src)
	}
}

func TestDecodeLenientReplacesInvalidBytes(t *testing.T) {
	src := []byte{'a', 0xff, 'b'}
	got := DecodeLenient(src)
	want := []byte("a�b")
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeLenient() = %q; want %q", got, want)
	}
}

func TestDecodeLenientEmpty(t *testing.T) {
	if got := DecodeLenient(nil); len(got) != 0 {
		t.Errorf("DecodeLenient(nil) = %q; want empty", got)
	}
}
