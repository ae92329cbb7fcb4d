// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes one instance of an element from the tree
//
// returns false if the element was not present, Size is decremented
// in either case
func (tree *Tree[T]) Remove(element T) bool {
	tree.size.Decrement()
	removed := false
	tree.root, removed = tree.remove(element, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[T]) remove(element T, p *node[T]) (*node[T], bool) {
	if nil == p { // element not in tree
		return nil, false
	}

	removed := false
	switch {
	case tree.less(element, p.element):
		p.left, removed = tree.remove(element, p.left)

	case tree.less(p.element, element):
		p.right, removed = tree.remove(element, p.right)

	case nil != p.left && nil != p.right:
		// found with two children: take over the successor's element
		// and unlink the successor in the same descent
		var successor *node[T]
		p.right, successor = tree.removeMin(p.right)
		p.element = successor.element
		freeNode(successor)
		removed = true

	default:
		// found with at most one child: splice it out
		q := p
		if nil != p.left {
			p = p.left
		} else {
			p = p.right
		}
		freeNode(q)
		removed = true
	}
	return tree.balance(p), removed
}

// RemoveMin - remove the smallest element and return it
//
// fails with fault.ErrTreeEmpty and leaves the tree untouched if
// there is nothing to remove
func (tree *Tree[T]) RemoveMin() (T, error) {
	if nil == tree.root {
		var zero T
		tree.underflow("remove min")
		return zero, fault.ErrTreeEmpty
	}

	var p *node[T]
	tree.root, p = tree.removeMin(tree.root)
	element := p.element
	freeNode(p)

	tree.size.Decrement()
	tree.count -= 1
	return element, nil
}

// internal: unlink the leftmost node of a non-empty sub-tree in a
// single descent, returns the new sub-tree root and the detached node
func (tree *Tree[T]) removeMin(p *node[T]) (*node[T], *node[T]) {
	if nil == p.left {
		return p.right, p
	}
	var min *node[T]
	p.left, min = tree.removeMin(p.left)
	return tree.balance(p), min
}

// internal: record an access to an empty tree
func (tree *Tree[T]) underflow(operation string) {
	if nil != tree.log {
		tree.log.Debugf("%s: %s", operation, fault.ErrTreeEmpty)
	}
}
