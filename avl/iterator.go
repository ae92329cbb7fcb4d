// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - call f for every element in ascending order until it
// returns false
func (tree *Tree[T]) Walk(f func(T) bool) {
	walk(tree.root, f)
}

// Values - all elements in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	walk(tree.root, func(element T) bool {
		values = append(values, element)
		return true
	})
	return values
}

// internal: in-order walk, false if stopped early
func walk[T any](p *node[T], f func(T) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p.element) {
		return false
	}
	return walk(p.right, f)
}

// internal: reverse in-order walk passing the depth of each node
func walkDescending[T any](p *node[T], depth int, f func(T, int)) {
	if nil == p {
		return
	}
	walkDescending(p.right, depth+1, f)
	f(p.element, depth)
	walkDescending(p.left, depth+1, f)
}
