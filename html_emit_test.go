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
	"strings"
	"testing"
)

func TestAppendHTMLShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "hw",
			input: `<entry main-word="cat" source="x"><hw>cat</hw></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><strong class="hw">cat</strong></div>`,
		},
		{
			name:  "spanClass",
			input: `<entry main-word="cat" source="x"><def>a feline</def></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><span class="def">a feline</span></div>`,
		},
		{
			name:  "em",
			input: `<entry main-word="cat" source="x"><pos>n.</pos></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><em>n.</em></div>`,
		},
		{
			name:  "altf",
			input: `<entry main-word="cat" source="x"><wf>kat</wf></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><strong class="altf">kat</strong></div>`,
		},
		{
			name:  "anchorClass",
			input: `<entry main-word="cat" source="x"><cref>Dog</cref></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><a class="cref" href="#">Dog</a></div>`,
		},
		{
			name:  "transparent",
			input: `<entry main-word="cat" source="x"><note>see dog</note></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x">see dog</div>`,
		},
		{
			name:  "p",
			input: `<entry main-word="cat" source="x"><p>Body.</p></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><p>Body.</p></div>`,
		},
		{
			name:  "pre",
			input: `<entry main-word="cat" source="x"><pre>a--b</pre></entry>`,
			want:  `<div class="entry" data-word="cat" data-source="x"><pre>a--b</pre></div>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry := parseOneEntry(t, test.input)
			got := string(AppendHTML(nil, entry))
			if got != test.want {
				t.Errorf("AppendHTML() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestAppendHTMLTypography(t *testing.T) {
	input := `<entry main-word="a" source="x"><p>rock 'n' roll----so they say--really</p></entry>`
	entry := parseOneEntry(t, input)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x"><p>rock ’n’ roll⎯⎯⎯so they say—really</p></div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestAppendHTMLPreSuppressesTypography(t *testing.T) {
	input := `<entry main-word="a" source="x"><pre>don't---stop</pre></entry>`
	entry := parseOneEntry(t, input)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x"><pre>don't---stop</pre></div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestAppendHTMLAmpEscaping(t *testing.T) {
	input := `<entry main-word="a" source="x"><p>Q & A</p></entry>`
	entry := parseOneEntry(t, input)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x"><p>Q &amp; A</p></div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestAppendHTMLUnknownTagDiagnostic(t *testing.T) {
	var diag bytes.Buffer
	old := htmlDiagWriter
	htmlDiagWriter = &diag
	defer func() { htmlDiagWriter = old }()

	input := `<entry main-word="a" source="x"><bogus>x</bogus></entry>`
	entry := parseOneEntry(t, input)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x">&#xfffd;<!--bogus--></div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
	if !strings.Contains(diag.String(), "bogus") {
		t.Errorf("diagnostic = %q; want mention of %q", diag.String(), "bogus")
	}
}

func TestAppendHTMLGreekDiaeresis(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><grk>i:</grk></entry>`)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x">ϊ</div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestAppendHTMLGreekTerminalSigma(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><grk>logos</grk></entry>`)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x">λογος</div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestGreekRejectsLetterOutsideAlphabet(t *testing.T) {
	// 'u' is excluded from the closed 49-letter alphabet, so it is not a
	// valid Greek token at all: a <grk> span containing it fails to parse
	// rather than rendering as U+FFFD.
	p := NewParser([]byte(`<entry main-word="a" source="x"><grk>u</grk></entry>`))
	_, parseErr, ok := p.Next()
	if !ok {
		t.Fatal("Next() ok = false")
	}
	if parseErr == nil {
		t.Error("parseErr = nil; want a body error for an unparseable <grk> span")
	}
}

func TestItalicLetterEntity(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><ait/</entry>`)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x"><i>a</i></div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestEntityFallbackToUnicode(t *testing.T) {
	// "frac13" has no HTML named entity, only a Unicode fallback.
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><frac13/</entry>`)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x">⅓</div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestEntityUnknownName(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><zzzznope/</entry>`)
	got := string(AppendHTML(nil, entry))
	want := "<div class=\"entry\" data-word=\"a\" data-source=\"x\">�</div>"
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestOneOfHTML(t *testing.T) {
	input := `<entry main-word="a" source="x"><oneof><c>one</c><c>two</c></oneof></entry>`
	entry := parseOneEntry(t, input)
	got := string(AppendHTML(nil, entry))
	want := `<div class="entry" data-word="a" data-source="x">onetwo</div>`
	if got != want {
		t.Errorf("AppendHTML() = %q; want %q", got, want)
	}
}

func TestRenderHTMLDocumentWrapsEntries(t *testing.T) {
	buf := []byte(`<entry main-word="cat" source="x"><p>Body.</p></entry>`)
	doc := string(RenderHTMLDocument(buf))
	if !strings.Contains(doc, "<!DOCTYPE html>") {
		t.Error("document missing doctype")
	}
	if !strings.Contains(doc, `data-word="cat"`) {
		t.Error("document missing rendered entry")
	}
}

func TestRenderHTMLDocumentReportsEntryFailure(t *testing.T) {
	buf := []byte(`<entry main-word="cat" source="x">`) // missing </entry>
	doc := string(RenderHTMLDocument(buf))
	if !strings.Contains(doc, "<!-- ERROR while parsing an entry -->") {
		t.Errorf("document = %q; want an error comment", doc)
	}
}
