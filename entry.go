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

// Entry is a single parsed dictionary headword: the tree built from one
// <entry main-word="..." source="...">...</entry> span.
//
// Entry and everything reachable from it (the [EntryItem] tree, every
// [Span]) borrows from Buffer. An Entry must not outlive the buffer it
// was parsed from.
type Entry struct {
	// Buffer is the whole input buffer that this Entry was parsed from
	// (the one passed to [NewParser]). mainWord, source and every Span
	// nested under Items are offsets into Buffer.
	Buffer []byte

	mainWord Span
	source   Span

	Items []*EntryItem
}

// MainWord returns the entry's headword, lifted from the main-word attribute.
func (e *Entry) MainWord() string {
	if e == nil {
		return ""
	}
	return e.mainWord.Text(e.Buffer)
}

// SourceAttr returns the entry's attribution, e.g. "1913 Webster".
// It may be empty.
func (e *Entry) SourceAttr() string {
	if e == nil {
		return ""
	}
	return e.source.Text(e.Buffer)
}

// EntryItemKind is an enumeration of the variants an [EntryItem] can hold.
type EntryItemKind uint8

const (
	PlainTextKind EntryItemKind = 1 + iota
	CommentKind
	EntityKind
	EntityBrKind
	EntityUnkKind
	ExternalLinkKind
	GreekKind
	TaggedKind
	UnpairedTagOpenKind
	UnpairedTagCloseKind
)

func (k EntryItemKind) String() string {
	switch k {
	case PlainTextKind:
		return "PlainText"
	case CommentKind:
		return "Comment"
	case EntityKind:
		return "Entity"
	case EntityBrKind:
		return "EntityBr"
	case EntityUnkKind:
		return "EntityUnk"
	case ExternalLinkKind:
		return "ExternalLink"
	case GreekKind:
		return "Greek"
	case TaggedKind:
		return "Tagged"
	case UnpairedTagOpenKind:
		return "UnpairedTagOpen"
	case UnpairedTagCloseKind:
		return "UnpairedTagClose"
	default:
		return "EntryItemKind(0)"
	}
}

// EntryItem is one element of an entry's body. Which fields are
// meaningful depends on Kind:
//
//   - PlainTextKind, CommentKind: Text
//   - EntityKind, UnpairedTagOpenKind, UnpairedTagCloseKind: Name, and
//     for UnpairedTagOpenKind optionally SourceAttr
//   - EntityBrKind: HasNewline
//   - ExternalLinkKind: URL, Text
//   - GreekKind: Greek
//   - TaggedKind: Name, Children, and optionally SourceAttr
//
// EntryItem values are produced by a [Parser] and are immutable.
type EntryItem struct {
	kind EntryItemKind
	span Span // the item's full extent, for diagnostics

	name      Span
	hasSource bool
	source    Span

	text Span // PlainText/Comment body, or ExternalLink link text
	url  Span // ExternalLink destination

	hasNewline bool // EntityBr

	children []*EntryItem
	greek    []GreekItem
}

// Kind reports which variant the item holds, or zero for the nil item.
func (it *EntryItem) Kind() EntryItemKind {
	if it == nil {
		return 0
	}
	return it.kind
}

// Span returns the item's byte range in the owning [Entry.Buffer].
func (it *EntryItem) Span() Span {
	if it == nil {
		return NullSpan()
	}
	return it.span
}

// Name returns the tag or entity name for Entity, Tagged,
// UnpairedTagOpen and UnpairedTagClose items.
func (it *EntryItem) Name(buf []byte) string {
	if it == nil {
		return ""
	}
	return it.name.Text(buf)
}

// HasSourceAttr reports whether a Tagged or UnpairedTagOpen item carries
// a source="..." attribute.
func (it *EntryItem) HasSourceAttr() bool {
	return it != nil && it.hasSource
}

// SourceAttr returns the value of the source="..." attribute, or "" if
// HasSourceAttr is false.
func (it *EntryItem) SourceAttr(buf []byte) string {
	if it == nil || !it.hasSource {
		return ""
	}
	return it.source.Text(buf)
}

// Text returns the body of a PlainText or Comment item, or the link
// text of an ExternalLink item.
func (it *EntryItem) Text(buf []byte) string {
	if it == nil {
		return ""
	}
	return it.text.Text(buf)
}

// URL returns the destination of an ExternalLink item.
func (it *EntryItem) URL(buf []byte) string {
	if it == nil {
		return ""
	}
	return it.url.Text(buf)
}

// HasNewline reports whether an EntityBr item was followed by a
// newline in the source.
func (it *EntryItem) HasNewline() bool {
	return it != nil && it.hasNewline
}

// Children returns the body of a Tagged item.
// Calling Children on a non-Tagged or nil item returns nil.
func (it *EntryItem) Children() []*EntryItem {
	if it == nil {
		return nil
	}
	return it.children
}

// GreekItems returns the contents of a Greek item.
func (it *EntryItem) GreekItems() []GreekItem {
	if it == nil {
		return nil
	}
	return it.greek
}

// dangleAllowed is the set of tag names permitted to appear unclosed,
// or with an unmatched close, without being flagged as a defect.
var dangleAllowed = map[string]bool{
	"collapse": true,
	"cs":       true,
	"note":     true,
	"usage":    true,
}

// GreekItemKind distinguishes the two kinds of [GreekItem].
type GreekItemKind uint8

const (
	LetterKind GreekItemKind = 1 + iota
	OtherKind
)

// GreekMods is a bitset of the modifiers that can attach to a Greek
// [GreekItem] of kind [LetterKind].
type GreekMods uint8

const (
	SLENIS GreekMods = 1 << iota
	SASPER
	ACUTE
	GRAVE
	CIRCUMFLEX
	IOTASUB
	DIAERESIS
	// TERMINAL is set during finalization (§4.2) on any 's' letter that
	// ends a Greek word: the letter is followed by a space, hyphen, or
	// nothing at all. It distinguishes final sigma (ς) from sigma (σ).
	TERMINAL
)

// Has reports whether all the bits in mask are set.
func (m GreekMods) Has(mask GreekMods) bool {
	return m&mask == mask
}

// GreekItem is one atom of a <grk>...</grk> transliteration: either a
// Greek letter with its prefix/suffix modifiers, or an uninterpreted
// character (space or hyphen).
type GreekItem struct {
	kind GreekItemKind
	ch   byte
	mods GreekMods
}

// Kind reports whether the item is a letter or an uninterpreted character.
func (g GreekItem) Kind() GreekItemKind {
	return g.kind
}

// Base returns the base letter of a LetterKind item (case-sensitive
// ASCII, drawn from the 49-letter transliteration alphabet).
func (g GreekItem) Base() byte {
	return g.ch
}

// Char returns the literal character of an OtherKind item.
func (g GreekItem) Char() byte {
	return g.ch
}

// Mods returns the modifier bitset of a LetterKind item.
func (g GreekItem) Mods() GreekMods {
	return g.mods
}

// ParserError is a diagnostic produced when the parser cannot make
// sense of a prefix of its input. It carries two adjacent views of the
// original input: Leading, the part that parsed successfully, and
// Trailing, the byte where parsing failed through to the end of the
// enclosing region. Emitters render it as "leading[ERROR->]trailing".
type ParserError struct {
	Buffer   []byte
	Leading  Span
	Trailing Span
}

// String renders the error the way every emitter does:
// leading text, the literal marker "[ERROR->]", then the trailing text.
func (e *ParserError) String() string {
	if e == nil {
		return ""
	}
	return e.Leading.Text(e.Buffer) + "[ERROR->]" + e.Trailing.Text(e.Buffer)
}

// Error implements the error interface so a ParserError can be threaded
// through ordinary Go error handling when that is more convenient than
// inspecting it as a diagnostic value.
func (e *ParserError) Error() string {
	return "gcide: parse error: " + e.String()
}
