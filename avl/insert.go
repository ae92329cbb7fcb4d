// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an element to the tree
//
// equal elements are kept, each insert adds one node
func (tree *Tree[T]) Insert(element T) {
	tree.size.Increment()
	tree.root = tree.insert(element, tree.root)
	tree.count += 1
}

// internal routine for insert
func (tree *Tree[T]) insert(element T, p *node[T]) *node[T] {
	if nil == p {
		return newNode(element)
	}
	if tree.less(element, p.element) {
		p.left = tree.insert(element, p.left)
	} else {
		p.right = tree.insert(element, p.right) // includes equal
	}
	return tree.balance(p)
}
