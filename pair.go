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

import "bytes"

// This file implements the tag pairer (L4): a single stack-based pass
// that reduces a flat item list into a tree by matching closes to the
// nearest open of the same name. Opens that are never closed, and
// closes with no matching open, are left as residuals: the pairer does
// not consult the dangle-allowed set, which is purely an emitter
// concern (§4.6, §4.7).
func pairItems(buf []byte, items []*EntryItem) []*EntryItem {
	stack := make([]*EntryItem, 0, len(items))
	for _, item := range items {
		if item.Kind() != UnpairedTagCloseKind {
			stack = append(stack, item)
			continue
		}
		closeName := item.name.slice(buf)
		openIdx := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].Kind() == UnpairedTagOpenKind && bytes.Equal(stack[i].name.slice(buf), closeName) {
				openIdx = i
				break
			}
		}
		if openIdx < 0 {
			stack = append(stack, item)
			continue
		}
		open := stack[openIdx]
		children := append([]*EntryItem(nil), stack[openIdx+1:]...)
		tagged := &EntryItem{
			kind:      TaggedKind,
			span:      Span{open.span.Start, item.span.End},
			name:      open.name,
			hasSource: open.hasSource,
			source:    open.source,
			children:  children,
		}
		stack = stack[:openIdx]
		stack = append(stack, tagged)
	}
	return stack
}
