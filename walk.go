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

// Cursor describes an [EntryItem] encountered during [Walk].
type Cursor struct {
	item   *EntryItem
	parent *EntryItem
	index  int
}

// Item returns the current item.
func (c *Cursor) Item() *EntryItem {
	return c.item
}

// Parent returns the parent of the current item, or nil at the root.
func (c *Cursor) Parent() *EntryItem {
	return c.parent
}

// Index returns the index of the current item among its parent's
// children or, if it has no parent, among the items passed to [Walk].
func (c *Cursor) Index() int {
	return c.index
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// Pre, if non-nil, is called for each item before its children are
	// traversed. If Pre returns false, the item's children (if any) are
	// skipped and Post is not called for that item.
	Pre func(c *Cursor) bool
	// Post, if non-nil, is called for each item after its children have
	// been traversed. If Post returns false, the walk stops immediately.
	Post func(c *Cursor) bool
}

// Walk traverses an entry's items recursively, depth-first,
// calling opts.Pre and opts.Post for each [EntryItem] encountered.
// Greek items are leaves and are not themselves visited; use
// [EntryItem.GreekItems] from Pre/Post to inspect them.
func Walk(items []*EntryItem, opts *WalkOptions) {
	type frame struct {
		Cursor
		post bool
	}

	stack := make([]frame, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, frame{Cursor: Cursor{item: items[i], index: i}})
	}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				*cursor = curr.Cursor
				if !opts.Post(cursor) {
					return
				}
			}
			continue
		}

		if opts.Pre != nil {
			*cursor = curr.Cursor
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)
		children := curr.item.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{Cursor: Cursor{
				parent: curr.item,
				item:   children[i],
				index:  i,
			}})
		}
	}
}
