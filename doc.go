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

// Package gcide provides a parser and two emitters for GCIDE markup,
// the dictionary entry format used by the GNU Collaborative International
// Dictionary of English.
//
// A [Parser] scans a decoded GCIDE file into a sequence of [Entry] values.
// Each entry holds a tree of [EntryItem] built by a two-level grammar: the
// block-level grammar in this package recognizes tags, entities, comments,
// external links and plain text; the nested Greek sub-grammar recognizes
// transliterated Greek letters and their diacritic modifiers inside
// <grk>...</grk> spans.
//
// Entries round-trip through [AppendGCIDE] byte-for-byte when well-formed,
// and render through [AppendHTML] to an HTML fragment suitable for
// embedding in a page. Malformed input never aborts parsing: residual
// markup is carried into the tree; the GCIDE emitter marks it inline
// with an "[ERROR->]" token and the HTML emitter leaves it out.
package gcide
