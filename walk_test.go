// Copyright 2024 Ross Light
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

import "testing"

func TestWalkPreOrder(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p><hw>cat</hw> n.</p></entry>`)
	var names []string
	Walk(entry.Items, &WalkOptions{
		Pre: func(c *Cursor) bool {
			it := c.Item()
			switch it.Kind() {
			case TaggedKind:
				names = append(names, it.Name(entry.Buffer))
			case PlainTextKind:
				names = append(names, "#text:"+it.Text(entry.Buffer))
			}
			return true
		},
	})
	want := []string{"p", "hw", "#text:cat", "#text: n."}
	if len(names) != len(want) {
		t.Fatalf("names = %v; want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q; want %q", i, names[i], want[i])
		}
	}
}

func TestWalkPreFalseSkipsChildren(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p><hw>cat</hw></p></entry>`)
	var visited []string
	Walk(entry.Items, &WalkOptions{
		Pre: func(c *Cursor) bool {
			it := c.Item()
			if it.Kind() == TaggedKind {
				visited = append(visited, it.Name(entry.Buffer))
			}
			return it.Kind() != TaggedKind || it.Name(entry.Buffer) != "p"
		},
	})
	if len(visited) != 1 || visited[0] != "p" {
		t.Errorf("visited = %v; want [p] (children of p should be skipped)", visited)
	}
}

func TestWalkPostOrderStopsEarly(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p>a</p><p>b</p></entry>`)
	count := 0
	Walk(entry.Items, &WalkOptions{
		Post: func(c *Cursor) bool {
			count++
			return false
		},
	})
	if count != 1 {
		t.Errorf("count = %d; want 1 (walk should stop after first Post returns false)", count)
	}
}

func TestWalkParentAndIndex(t *testing.T) {
	entry := parseOneEntry(t, `<entry main-word="a" source="x"><p><hw>cat</hw></p></entry>`)
	var gotParent *EntryItem
	var gotIndex int
	Walk(entry.Items, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Item().Kind() == TaggedKind && c.Item().Name(entry.Buffer) == "hw" {
				gotParent = c.Parent()
				gotIndex = c.Index()
			}
			return true
		},
	})
	if gotParent == nil || gotParent.Name(entry.Buffer) != "p" {
		t.Errorf("Parent() = %v; want the <p> item", gotParent)
	}
	if gotIndex != 0 {
		t.Errorf("Index() = %d; want 0", gotIndex)
	}
}
