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

// Residual describes an [EntryItem] left over by the tag pairer (L4)
// that is not in the dangle-allowed set: a genuine markup defect that
// an emitter will mark with "[ERROR->]".
//
// This is not schema validation (the module does not check GCIDE
// structure against any grammar beyond §4.1-§4.5); it surfaces exactly
// the residuals the tag pairer already produced, for callers that want
// to report or count defects without re-walking the emitted text.
type Residual struct {
	Item *EntryItem
	Name string
}

// FindResiduals walks an entry's items and returns every
// UnpairedTagOpen/UnpairedTagClose item that is not in the
// dangle-allowed set {collapse, cs, note, usage}, in document order.
func FindResiduals(e *Entry) []Residual {
	var out []Residual
	Walk(e.Items, &WalkOptions{
		Pre: func(c *Cursor) bool {
			it := c.Item()
			switch it.Kind() {
			case UnpairedTagOpenKind, UnpairedTagCloseKind:
				name := it.Name(e.Buffer)
				if !dangleAllowed[name] {
					out = append(out, Residual{Item: it, Name: name})
				}
			}
			return true
		},
	})
	return out
}

// IsWellFormed reports whether an entry has no residual markup: every
// UnpairedTagOpen/UnpairedTagClose in it is in the dangle-allowed set.
// Round-trip identity (§8) can only hold for well-formed entries; a
// well-formed entry whose tag other than <p> or <extra> carries a
// source="..." attribute is still flagged by [AppendGCIDE].
func IsWellFormed(e *Entry) bool {
	return len(FindResiduals(e)) == 0
}
