// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[T any] struct {
	left    *node[T] // left sub-tree
	right   *node[T] // right sub-tree
	element T        // ordering and data
	height  int      // 0 for a leaf
}

// allocate a new leaf
func newNode[T any](element T) *node[T] {
	return &node[T]{
		element: element,
		height:  0,
	}
}

// detach a node so it holds no references
func freeNode[T any](p *node[T]) {
	var zero T
	p.left = nil
	p.right = nil
	p.element = zero
	p.height = -1
}

// release a complete sub-tree, children before parent
func freeTree[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	n := 1 + freeTree(p.left) + freeTree(p.right)
	freeNode(p)
	return n
}

// height of a sub-tree, -1 if empty
func height[T any](p *node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func (p *node[T]) fixHeight() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}
