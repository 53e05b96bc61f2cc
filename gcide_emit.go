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

import "io"

// This file implements the GCIDE emitter (L6): a pure serialization
// from an entry tree back to canonical GCIDE markup. It is
// round-trip-identity on well-formed input and idempotent on
// everything else, per §4.6 and §8.

// sourceAttrAllowed is the set of tag names whose source="..." attribute
// is considered well-formed rather than anomalous.
var sourceAttrAllowed = map[string]bool{
	"p":     true,
	"extra": true,
}

// AppendGCIDE appends the canonical GCIDE rendering of an entry to dst
// and returns the resulting slice.
func AppendGCIDE(dst []byte, e *Entry) []byte {
	dst = append(dst, `<entry main-word="`...)
	dst = append(dst, e.MainWord()...)
	dst = append(dst, `" source="`...)
	dst = append(dst, e.SourceAttr()...)
	dst = append(dst, `">`...)
	for _, item := range e.Items {
		dst = appendGCIDEItem(dst, e.Buffer, item)
	}
	dst = append(dst, `</entry>`...)
	return dst
}

// AppendGCIDEError appends the rendering of a scanner or block error:
// its leading text, the literal marker "[ERROR->]", then its trailing
// text.
func AppendGCIDEError(dst []byte, err *ParserError) []byte {
	dst = append(dst, err.Leading.slice(err.Buffer)...)
	dst = append(dst, "[ERROR->]"...)
	dst = append(dst, err.Trailing.slice(err.Buffer)...)
	return dst
}

// WriteGCIDE writes the canonical GCIDE rendering of an entry to w.
func WriteGCIDE(w io.Writer, e *Entry) error {
	_, err := w.Write(AppendGCIDE(nil, e))
	return err
}

func appendGCIDEItem(dst []byte, buf []byte, item *EntryItem) []byte {
	switch item.Kind() {
	case PlainTextKind:
		dst = append(dst, item.Text(buf)...)
	case CommentKind:
		dst = append(dst, "<--"...)
		dst = append(dst, item.Text(buf)...)
		dst = append(dst, "-->"...)
	case EntityKind:
		dst = append(dst, '<')
		dst = append(dst, item.Name(buf)...)
		dst = append(dst, '/')
	case EntityBrKind:
		dst = append(dst, "<br/"...)
		if item.HasNewline() {
			dst = append(dst, '\n')
		}
	case EntityUnkKind:
		dst = append(dst, "<?/"...)
	case ExternalLinkKind:
		dst = append(dst, `<a href="`...)
		dst = append(dst, item.URL(buf)...)
		dst = append(dst, `">`...)
		dst = append(dst, item.Text(buf)...)
		dst = append(dst, "</a>"...)
	case GreekKind:
		dst = append(dst, "<grk>"...)
		for _, g := range item.GreekItems() {
			dst = appendGreekItemGCIDE(dst, g)
		}
		dst = append(dst, "</grk>"...)
	case TaggedKind:
		name := item.Name(buf)
		dst = appendTagOpen(dst, name, item.HasSourceAttr(), item.SourceAttr(buf))
		for _, child := range item.Children() {
			dst = appendGCIDEItem(dst, buf, child)
		}
		dst = append(dst, '<', '/')
		dst = append(dst, name...)
		dst = append(dst, '>')
	case UnpairedTagOpenKind:
		name := item.Name(buf)
		if !dangleAllowed[name] {
			dst = append(dst, "[ERROR->]"...)
		}
		dst = appendTagOpen(dst, name, item.HasSourceAttr(), item.SourceAttr(buf))
	case UnpairedTagCloseKind:
		name := item.Name(buf)
		if !dangleAllowed[name] {
			dst = append(dst, "[ERROR->]"...)
		}
		dst = append(dst, '<', '/')
		dst = append(dst, name...)
		dst = append(dst, '>')
	}
	return dst
}

// appendTagOpen writes an opening tag, applying the source="..."
// anomaly rule: the attribute is only considered well-formed on <p>
// and <extra>; elsewhere its presence is flagged in place, since the
// attribute itself must still be reproduced faithfully.
func appendTagOpen(dst []byte, name string, hasSource bool, source string) []byte {
	dst = append(dst, '<')
	dst = append(dst, name...)
	if hasSource {
		if !sourceAttrAllowed[name] {
			dst = append(dst, " [ERROR->]"...)
		} else {
			dst = append(dst, ' ')
		}
		dst = append(dst, `source="`...)
		dst = append(dst, source...)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	return dst
}

func appendGreekItemGCIDE(dst []byte, g GreekItem) []byte {
	if g.Kind() == OtherKind {
		return append(dst, g.Char())
	}
	mods := g.Mods()
	if mods.Has(SLENIS) {
		dst = append(dst, '\'')
	}
	if mods.Has(SASPER) {
		dst = append(dst, '"')
	}
	dst = append(dst, g.Base())
	if mods.Has(DIAERESIS) {
		dst = append(dst, ':')
	}
	switch {
	case mods.Has(ACUTE):
		dst = append(dst, '`')
	case mods.Has(GRAVE):
		dst = append(dst, '~')
	case mods.Has(CIRCUMFLEX):
		dst = append(dst, '^')
	}
	if mods.Has(IOTASUB) {
		dst = append(dst, ',')
	}
	return dst
}
