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

import "testing"

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"clean", `<entry main-word="a" source="x"><p>hi</p></entry>`, true},
		{"danglingAllowed", `<entry main-word="a" source="x"><note>hi</entry>`, true},
		{"danglingDisallowed", `<entry main-word="a" source="x"><col>hi</entry>`, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry := parseOneEntry(t, test.input)
			if got := IsWellFormed(entry); got != test.want {
				t.Errorf("IsWellFormed() = %v; want %v", got, test.want)
			}
		})
	}
}

func TestFindResiduals(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p><col>stray</p></entry>`)
	residuals := FindResiduals(entry)
	if len(residuals) != 1 {
		t.Fatalf("len(residuals) = %d; want 1 (%+v)", len(residuals), residuals)
	}
	if residuals[0].Name != "col" {
		t.Errorf("residuals[0].Name = %q; want %q", residuals[0].Name, "col")
	}
}

func TestFindResidualsNoneOnCleanEntry(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p><hw>cat</hw></p></entry>`)
	if got := FindResiduals(entry); len(got) != 0 {
		t.Errorf("FindResiduals() = %v; want none", got)
	}
}
