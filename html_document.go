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

const htmlDocHead = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="content-type" content="text/html; charset=utf-8">
<title>Webster's Unabridged Dictionary 1913</title>
</head>
<body>
`

const htmlDocTail = "\n</body>\n</html>"

// RenderHTMLDocument parses every entry in buf and renders it as a
// standalone HTML document: the operation behind the gcide-html
// command. An entry that fails to parse is replaced with an HTML
// comment noting the failure, rather than aborting the whole document.
func RenderHTMLDocument(buf []byte) []byte {
	out := make([]byte, 0, len(buf)/3)
	out = append(out, htmlDocHead...)
	p := NewParser(buf)
	for {
		entry, parseErr, ok := p.Next()
		if !ok {
			break
		}
		out = append(out, '\n')
		if parseErr != nil {
			out = append(out, "<!-- ERROR while parsing an entry -->"...)
		} else {
			out = AppendHTML(out, entry)
		}
		out = append(out, '\n')
	}
	out = append(out, htmlDocTail...)
	return out
}
