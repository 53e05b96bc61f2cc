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

// Span is a byte range into a buffer that an [Entry] was parsed from.
// All text carried by an [EntryItem] is a view into that buffer: Span
// itself never copies bytes.
type Span struct {
	Start int
	End   int
}

// NullSpan returns the invalid, zero-length span conventionally used
// for nodes that have no source position.
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span refers to an actual range in a buffer.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Text returns the substring of source that the span refers to,
// or "" if the span is invalid.
func (s Span) Text(source []byte) string {
	if !s.IsValid() {
		return ""
	}
	return string(source[s.Start:s.End])
}

// slice returns the raw bytes of source that the span refers to.
func (s Span) slice(source []byte) []byte {
	if !s.IsValid() {
		return nil
	}
	return source[s.Start:s.End]
}
