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
	"fmt"
	"io"
	"os"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// This file implements the HTML emitter (L7): a pure rendering from an
// entry tree to HTML, per §4.7. Unknown tag names and non-precomposed
// Greek output are reported to standard error rather than failing the
// render; the emitter never returns an error itself.

// Tag names are drawn from atom rather than typed as literals, since
// every one of them is a real HTML element name.
var (
	tagDiv    = atom.Div.String()
	tagP      = atom.P.String()
	tagStrong = atom.Strong.String()
	tagSpan   = atom.Span.String()
	tagEm     = atom.Em.String()
	tagA      = atom.A.String()
	tagPre    = atom.Pre.String()
)

// htmlTextReplacer performs the straight-apostrophe and hyphen-run
// typographic substitutions applied to PlainText outside of a pre
// context.
var htmlTextReplacer = bytereplacer.New(
	"----", "⎯⎯⎯",
	"--", "—",
	"'", "’",
)

var htmlAmpEscaper = bytereplacer.New("&", "&amp;")

// htmlShape describes how a Tagged item's name maps to HTML.
type htmlShape int

const (
	shapeUnknown htmlShape = iota
	shapeP
	shapeStrongHW
	shapeSpanClass
	shapeEm
	shapeStrongAltf
	shapeAnchorClass
	shapeTransparent
	shapeOneOf
	shapePre
)

var spanClassNames = map[string]bool{
	"ety": true, "ets": true, "etsep": true, "pr": true, "def": true,
	"altname": true, "col": true, "cd": true, "plain": true, "fld": true,
	"mark": true, "sd": true, "sn": true, "au": true, "ecol": true, "stype": true,
}

var emNames = map[string]bool{
	"pos": true, "pluf": true, "singf": true, "class": true, "fam": true,
	"gen": true, "ord": true, "spn": true, "ex": true, "qex": true,
	"xex": true, "it": true, "sig": true,
}

var altfNames = map[string]bool{
	"asp": true, "adjf": true, "conjf": true, "decf": true, "plw": true,
	"singw": true, "wf": true,
}

var anchorClassNames = map[string]bool{
	"er": true, "snr": true, "sdr": true, "cref": true,
}

var transparentNames = map[string]bool{
	"as": true, "def2": true, "altsp": true, "cs": true, "mcol": true,
	"mhw": true, "note": true, "syn": true, "usage": true, "mord": true,
	"rj": true, "specif": true, "book": true, "org": true, "city": true,
	"country": true, "geog": true, "plu": true, "sing": true, "amorph": true,
	"nmorph": true, "vmorph": true, "wordforms": true, "q": true, "qau": true,
}

func htmlShapeFor(name string) htmlShape {
	switch {
	case name == "p":
		return shapeP
	case name == "pre":
		return shapePre
	case name == "hw":
		return shapeStrongHW
	case spanClassNames[name]:
		return shapeSpanClass
	case emNames[name]:
		return shapeEm
	case altfNames[name]:
		return shapeStrongAltf
	case anchorClassNames[name]:
		return shapeAnchorClass
	case transparentNames[name]:
		return shapeTransparent
	case name == "oneof":
		return shapeOneOf
	default:
		return shapeUnknown
	}
}

// htmlDiagWriter receives the diagnostics the HTML emitter produces for
// unknown tag names and non-precomposed Greek output. It defaults to
// os.Stderr; tests substitute their own writer to assert on it.
var htmlDiagWriter io.Writer = os.Stderr

// AppendHTML appends the HTML rendering of an entry to dst and returns
// the resulting slice.
func AppendHTML(dst []byte, e *Entry) []byte {
	dst = append(dst, '<')
	dst = append(dst, tagDiv...)
	dst = append(dst, ` class="entry" data-word="`...)
	dst = append(dst, e.MainWord()...)
	dst = append(dst, `" data-source="`...)
	dst = append(dst, e.SourceAttr()...)
	dst = append(dst, `">`...)
	for _, item := range e.Items {
		dst = appendHTMLItem(dst, e.Buffer, item, "")
	}
	dst = append(dst, "</"...)
	dst = append(dst, tagDiv...)
	dst = append(dst, '>')
	return dst
}

// WriteHTML writes the HTML rendering of an entry to w.
func WriteHTML(w io.Writer, e *Entry) error {
	_, err := w.Write(AppendHTML(nil, e))
	return err
}

// appendHTMLItem renders item, given the name of its ambient enclosing
// tag (the empty string at the document root). The ambient tag is used
// only to suppress the apostrophe and dash substitutions inside "pre".
func appendHTMLItem(dst []byte, buf []byte, item *EntryItem, ambient string) []byte {
	switch item.Kind() {
	case PlainTextKind:
		text := []byte(item.Text(buf))
		if ambient != tagPre {
			text = htmlTextReplacer.Replace(text)
		}
		text = htmlAmpEscaper.Replace(text)
		dst = append(dst, text...)
	case CommentKind:
		// emits nothing
	case EntityKind:
		dst = append(dst, htmlEntityOrTag(item.Name(buf))...)
	case EntityBrKind:
		dst = append(dst, "<br/>\n"...)
	case EntityUnkKind:
		dst = append(dst, "&#xfffd;"...)
	case ExternalLinkKind:
		dst = append(dst, '<')
		dst = append(dst, tagA...)
		dst = append(dst, ` class="extern" href="`...)
		dst = append(dst, item.URL(buf)...)
		dst = append(dst, `">`...)
		dst = append(dst, item.Text(buf)...)
		dst = append(dst, "</"...)
		dst = append(dst, tagA...)
		dst = append(dst, '>')
	case GreekKind:
		for _, g := range item.GreekItems() {
			dst = appendGreekItemHTML(dst, g)
		}
	case TaggedKind:
		dst = appendTaggedHTML(dst, buf, item, ambient)
	case UnpairedTagOpenKind, UnpairedTagCloseKind:
		// emits nothing
	}
	return dst
}

func appendChildrenHTML(dst []byte, buf []byte, children []*EntryItem, ambient string) []byte {
	for _, child := range children {
		dst = appendHTMLItem(dst, buf, child, ambient)
	}
	return dst
}

func appendTaggedHTML(dst []byte, buf []byte, item *EntryItem, ambient string) []byte {
	name := item.Name(buf)
	switch htmlShapeFor(name) {
	case shapeP:
		dst = append(dst, '<')
		dst = append(dst, tagP...)
		if item.HasSourceAttr() {
			dst = append(dst, ` data-source="`...)
			dst = append(dst, item.SourceAttr(buf)...)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagP...)
		dst = append(dst, '>')
	case shapeStrongHW:
		dst = append(dst, '<')
		dst = append(dst, tagStrong...)
		dst = append(dst, ` class="hw">`...)
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagStrong...)
		dst = append(dst, '>')
	case shapeSpanClass:
		dst = append(dst, '<')
		dst = append(dst, tagSpan...)
		dst = append(dst, ` class="`...)
		dst = append(dst, name...)
		dst = append(dst, `">`...)
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagSpan...)
		dst = append(dst, '>')
	case shapeEm:
		dst = append(dst, '<')
		dst = append(dst, tagEm...)
		dst = append(dst, '>')
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagEm...)
		dst = append(dst, '>')
	case shapeStrongAltf:
		dst = append(dst, '<')
		dst = append(dst, tagStrong...)
		dst = append(dst, ` class="altf">`...)
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagStrong...)
		dst = append(dst, '>')
	case shapeAnchorClass:
		dst = append(dst, '<')
		dst = append(dst, tagA...)
		dst = append(dst, ` class="`...)
		dst = append(dst, name...)
		dst = append(dst, `" href="#">`...)
		dst = appendChildrenHTML(dst, buf, item.Children(), name)
		dst = append(dst, "</"...)
		dst = append(dst, tagA...)
		dst = append(dst, '>')
	case shapePre:
		dst = append(dst, '<')
		dst = append(dst, tagPre...)
		dst = append(dst, '>')
		dst = appendChildrenHTML(dst, buf, item.Children(), tagPre)
		dst = append(dst, "</"...)
		dst = append(dst, tagPre...)
		dst = append(dst, '>')
	case shapeTransparent:
		dst = appendChildrenHTML(dst, buf, item.Children(), ambient)
	case shapeOneOf:
		dst = appendOneOfHTML(dst, buf, item.Children())
	default:
		fmt.Fprintf(htmlDiagWriter, "gcide: html: unknown tag %q\n", name)
		dst = append(dst, "&#xfffd;<!--"...)
		dst = append(dst, name...)
		dst = append(dst, "-->"...)
	}
	return dst
}

// appendOneOfHTML renders the children of an <oneof> tag: each child
// named "c" is transparent, emitting only its own children; any other
// child is rendered with ambient context "plain".
func appendOneOfHTML(dst []byte, buf []byte, children []*EntryItem) []byte {
	for _, child := range children {
		if child.Kind() == TaggedKind && child.Name(buf) == "c" {
			dst = appendChildrenHTML(dst, buf, child.Children(), "plain")
			continue
		}
		dst = appendHTMLItem(dst, buf, child, "plain")
	}
	return dst
}

// htmlEntityOrTag renders an Entity item's name. A small family of
// names denote a single italicized letter (the name is that letter
// followed by "it", e.g. "ait" for italic "a"); lt/gt map to their
// escaped forms via the HTML table; everything else is looked up in
// the HTML, then Unicode, entity tables.
func htmlEntityOrTag(name string) string {
	if letter, ok := italicLetterEntity(name); ok {
		return "<i>" + letter + "</i>"
	}
	return htmlEntityFor(name)
}

// italicLetterEntity reports whether name is a single-letter italic
// entity (one ASCII letter followed by the literal "it") and, if so,
// returns the letter.
func italicLetterEntity(name string) (string, bool) {
	if len(name) != 3 || !strings.HasSuffix(name, "it") {
		return "", false
	}
	c := name[0]
	if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return "", false
	}
	return name[:1], true
}

// greekBase maps a Greek transliteration base letter to its Unicode
// Greek base code point, choosing the final-sigma form when terminal
// is set.
func greekBase(ch byte, terminal bool) (rune, bool) {
	if ch == 's' {
		if terminal {
			return 'ς', true
		}
		return 'σ', true
	}
	r, ok := greekLetterBases[ch]
	return r, ok
}

func appendGreekItemHTML(dst []byte, g GreekItem) []byte {
	if g.Kind() == OtherKind {
		return append(dst, g.Char())
	}
	base, ok := greekBase(g.Base(), g.Mods().Has(TERMINAL))
	if !ok {
		fmt.Fprintf(htmlDiagWriter, "gcide: html: no greek base for %q\n", g.Base())
		return append(dst, "�"...)
	}
	mods := g.Mods()
	var buf []rune
	buf = append(buf, base)
	if mods.Has(SLENIS) {
		buf = append(buf, '̓')
	}
	if mods.Has(SASPER) {
		buf = append(buf, '̔')
	}
	if mods.Has(DIAERESIS) {
		buf = append(buf, '̈')
	}
	switch {
	case mods.Has(ACUTE):
		buf = append(buf, '́')
	case mods.Has(GRAVE):
		buf = append(buf, '̀')
	case mods.Has(CIRCUMFLEX):
		buf = append(buf, '͂')
	}
	if mods.Has(IOTASUB) {
		buf = append(buf, 'ͅ')
	}
	composed := norm.NFC.String(string(buf))
	if len([]rune(composed)) > 1 {
		fmt.Fprintf(htmlDiagWriter, "gcide: html: greek letter %c did not compose to a single rune\n", g.Base())
		return append(dst, "�"...)
	}
	return append(dst, composed...)
}
