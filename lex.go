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

// This file implements the lexical grammar (L1): the six primitive
// block-level token shapes, tried in order, first longest-prefix match
// wins. lexOne is called repeatedly by the sequencer (sequence.go)
// until it fails to make progress, at which point the remainder of the
// block becomes a ParserError.

// lexOne recognizes a single token starting at buf[pos] and returns the
// item it built and the position immediately following it. ok is false
// if none of the six shapes (or a <grk> span, handled by the sequencer
// before lexOne is tried) matched.
func lexOne(buf []byte, pos int) (item *EntryItem, end int, ok bool) {
	if item, end, ok = lexPlainText(buf, pos); ok {
		return item, end, true
	}
	if item, end, ok = lexOpenTag(buf, pos); ok {
		return item, end, true
	}
	if item, end, ok = lexCloseTag(buf, pos); ok {
		return item, end, true
	}
	if item, end, ok = lexEntity(buf, pos); ok {
		return item, end, true
	}
	if item, end, ok = lexComment(buf, pos); ok {
		return item, end, true
	}
	if item, end, ok = lexExternalLink(buf, pos); ok {
		return item, end, true
	}
	return nil, pos, false
}

// isNameByte reports whether b is valid in a tag name: [0-9A-Za-z].
func isNameByte(b byte) bool {
	return '0' <= b && b <= '9' || 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}

// isEntityNameByte reports whether b is valid in an entity name. The
// permissive grammar [0-9A-Za-z:_]+ is used rather than the stricter
// alphanumeric-only grammar an earlier snapshot enforced.
func isEntityNameByte(b byte) bool {
	return isNameByte(b) || b == ':' || b == '_'
}

func lexPlainText(buf []byte, pos int) (*EntryItem, int, bool) {
	end := pos
	for end < len(buf) && buf[end] != '<' && buf[end] != '>' {
		end++
	}
	if end == pos {
		return nil, pos, false
	}
	return &EntryItem{
		kind: PlainTextKind,
		span: Span{pos, end},
		text: Span{pos, end},
	}, end, true
}

// lexOpenTag recognizes "<" name (optional ' source="..."') ">".
// It always yields an UnpairedTagOpen item; pairing (L4) reduces
// matched pairs into Tagged items later.
func lexOpenTag(buf []byte, pos int) (*EntryItem, int, bool) {
	i := pos
	if i >= len(buf) || buf[i] != '<' {
		return nil, pos, false
	}
	i++
	nameStart := i
	for i < len(buf) && isNameByte(buf[i]) {
		i++
	}
	if i == nameStart {
		return nil, pos, false
	}
	nameSpan := Span{nameStart, i}

	var sourceSpan Span
	hasSource := false
	if rest := buf[i:]; hasBytePrefix(rest, []byte(` source="`)) {
		j := i + len(` source="`)
		valStart := j
		for j < len(buf) && buf[j] != '"' {
			j++
		}
		if j >= len(buf) {
			return nil, pos, false
		}
		sourceSpan = Span{valStart, j}
		hasSource = true
		i = j + 1
	}
	if i >= len(buf) || buf[i] != '>' {
		return nil, pos, false
	}
	end := i + 1
	return &EntryItem{
		kind:      UnpairedTagOpenKind,
		span:      Span{pos, end},
		name:      nameSpan,
		hasSource: hasSource,
		source:    sourceSpan,
	}, end, true
}

func lexCloseTag(buf []byte, pos int) (*EntryItem, int, bool) {
	rest := buf[pos:]
	if !hasBytePrefix(rest, []byte("</")) {
		return nil, pos, false
	}
	i := pos + 2
	nameStart := i
	for i < len(buf) && isNameByte(buf[i]) {
		i++
	}
	if i == nameStart || i >= len(buf) || buf[i] != '>' {
		return nil, pos, false
	}
	end := i + 1
	return &EntryItem{
		kind: UnpairedTagCloseKind,
		span: Span{pos, end},
		name: Span{nameStart, i},
	}, end, true
}

// lexEntity recognizes the three entity shapes, tried in the order
// EntityUnk, EntityBr, then named Entity.
func lexEntity(buf []byte, pos int) (*EntryItem, int, bool) {
	rest := buf[pos:]
	if hasBytePrefix(rest, []byte("<?/")) {
		end := pos + 3
		return &EntryItem{kind: EntityUnkKind, span: Span{pos, end}}, end, true
	}
	if hasBytePrefix(rest, []byte("<br/")) {
		end := pos + 4
		hasNL := end < len(buf) && buf[end] == '\n'
		if hasNL {
			end++
		}
		return &EntryItem{kind: EntityBrKind, span: Span{pos, end}, hasNewline: hasNL}, end, true
	}
	if len(rest) > 0 && rest[0] == '<' {
		i := pos + 1
		nameStart := i
		for i < len(buf) && isEntityNameByte(buf[i]) {
			i++
		}
		if i > nameStart && i < len(buf) && buf[i] == '/' {
			end := i + 1
			return &EntryItem{
				kind: EntityKind,
				span: Span{pos, end},
				name: Span{nameStart, i},
			}, end, true
		}
	}
	return nil, pos, false
}

func lexComment(buf []byte, pos int) (*EntryItem, int, bool) {
	rest := buf[pos:]
	if !hasBytePrefix(rest, []byte("<--")) {
		return nil, pos, false
	}
	bodyStart := pos + 3
	closeIdx := indexBytes(buf[bodyStart:], []byte("-->"))
	if closeIdx < 0 {
		return nil, pos, false
	}
	bodyEnd := bodyStart + closeIdx
	end := bodyEnd + 3
	return &EntryItem{
		kind: CommentKind,
		span: Span{pos, end},
		text: Span{bodyStart, bodyEnd},
	}, end, true
}

func lexExternalLink(buf []byte, pos int) (*EntryItem, int, bool) {
	const prefix = `<a href="`
	rest := buf[pos:]
	if !hasBytePrefix(rest, []byte(prefix)) {
		return nil, pos, false
	}
	i := pos + len(prefix)
	urlStart := i
	for i < len(buf) && buf[i] != '"' {
		i++
	}
	if i >= len(buf) {
		return nil, pos, false
	}
	urlSpan := Span{urlStart, i}
	i++ // consume closing quote
	if !hasBytePrefix(buf[i:], []byte(">")) {
		return nil, pos, false
	}
	i++ // consume '>'
	textStart := i
	for i < len(buf) && buf[i] != '<' && buf[i] != '>' {
		i++
	}
	if i == textStart {
		return nil, pos, false
	}
	textSpan := Span{textStart, i}
	if !hasBytePrefix(buf[i:], []byte("</a>")) {
		return nil, pos, false
	}
	end := i + len("</a>")
	return &EntryItem{
		kind: ExternalLinkKind,
		span: Span{pos, end},
		url:  urlSpan,
		text: textSpan,
	}, end, true
}

func hasBytePrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

func indexBytes(haystack, needle []byte) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(haystack); i++ {
		if hasBytePrefix(haystack[i:], needle) {
			return i
		}
	}
	return -1
}
