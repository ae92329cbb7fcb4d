// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - deep copy with the same shape, heights, counters and
// settings
func (tree *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{
		root:      clone(tree.root),
		less:      tree.less,
		count:     tree.count,
		format:    tree.format,
		log:       tree.log,
		observers: append([]Observer(nil), tree.observers...),
	}
	c.size.Set(tree.size.Int64())
	return c
}

func clone[T any](p *node[T]) *node[T] {
	if nil == p {
		return nil
	}
	return &node[T]{
		left:    clone(p.left),
		right:   clone(p.right),
		element: p.element,
		height:  p.height,
	}
}

// Move - transfer all nodes and counters to a new tree, leaving this
// one empty
func (tree *Tree[T]) Move() *Tree[T] {
	m := &Tree[T]{
		root:      tree.root,
		less:      tree.less,
		count:     tree.count,
		format:    tree.format,
		log:       tree.log,
		observers: tree.observers,
	}
	m.size.Set(tree.size.Int64())

	tree.root = nil
	tree.count = 0
	tree.size.Set(0)
	tree.observers = nil
	return m
}

// MakeEmpty - release every node, the tree can be reused afterwards
func (tree *Tree[T]) MakeEmpty() {
	n := freeTree(tree.root)
	if nil != tree.log && n > 0 {
		tree.log.Debugf("released: %d nodes", n)
	}
	tree.root = nil
	tree.count = 0
	tree.size.Set(0)
}

// Equal - true if both trees have the same shape, cached heights and
// equivalent elements at every node
func (tree *Tree[T]) Equal(other *Tree[T]) bool {
	if nil == other {
		return false
	}
	return tree.equal(tree.root, other.root)
}

func (tree *Tree[T]) equal(p *node[T], q *node[T]) bool {
	if nil == p || nil == q {
		return p == q
	}
	if p.height != q.height || !tree.equivalent(p.element, q.element) {
		return false
	}
	return tree.equal(p.left, q.left) && tree.equal(p.right, q.right)
}
