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

import "unicode/utf8"

// DecodeLenient returns src with every invalid UTF-8 byte sequence
// replaced by U+FFFD, so that a malformed file never prevents a parse:
// the collaborator loading a file from disk should pass it through
// this before handing it to [NewParser].
func DecodeLenient(src []byte) []byte {
	if utf8.Valid(src) {
		return src
	}
	out := make([]byte, 0, len(src))
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size <= 1 {
			out = append(out, "�"...)
			src = src[1:]
			continue
		}
		out = append(out, src[:size]...)
		src = src[size:]
	}
	return out
}
