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

// This file implements the block-item sequencer (L3): applying the
// lexical grammar repeatedly to an entry body until the input is
// exhausted or a prefix cannot be recognized.

const (
	grkOpen  = "<grk>"
	grkClose = "</grk>"
)

// sequenceItems lexes buf[start:] into a flat list of items (no
// tag pairing yet). buf is bounded by its own length, so callers pass a
// slice already truncated to the end of the entry body.
//
// ok is false if a prefix starting at failPos could not be recognized;
// items holds whatever was successfully lexed before that point.
func sequenceItems(buf []byte, start int) (items []*EntryItem, failPos int, ok bool) {
	pos := start
	for pos < len(buf) {
		if hasBytePrefix(buf[pos:], []byte(grkOpen)) {
			item, end, matched := lexGreekSpan(buf, pos)
			if !matched {
				return items, pos, false
			}
			items = append(items, item)
			pos = end
			continue
		}
		item, end, matched := lexOne(buf, pos)
		if !matched {
			return items, pos, false
		}
		items = append(items, item)
		pos = end
	}
	return items, pos, true
}

// lexGreekSpan recognizes a full <grk>...</grk> span: it is lexically
// scoped (no nesting), so it is handled ahead of the six primitive
// recognizers in lex.go rather than folded into the tag pairer.
func lexGreekSpan(buf []byte, pos int) (*EntryItem, int, bool) {
	contentStart := pos + len(grkOpen)
	closeIdx := indexBytes(buf[contentStart:], []byte(grkClose))
	if closeIdx < 0 {
		return nil, pos, false
	}
	contentEnd := contentStart + closeIdx
	greekItems, parsed, _ := parseGreek(buf[contentStart:contentEnd])
	if !parsed {
		return nil, pos, false
	}
	end := contentEnd + len(grkClose)
	return &EntryItem{
		kind:  GreekKind,
		span:  Span{pos, end},
		greek: greekItems,
	}, end, true
}
