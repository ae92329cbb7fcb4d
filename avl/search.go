// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Contains - true if an element equivalent to the argument is present
func (tree *Tree[T]) Contains(element T) bool {
	p := tree.root
	for nil != p {
		switch {
		case tree.less(element, p.element):
			p = p.left
		case tree.less(p.element, element):
			p = p.right
		default:
			return true
		}
	}
	return false
}

// FindMin - return the smallest element
func (tree *Tree[T]) FindMin() (T, error) {
	p := tree.root.first()
	if nil == p {
		var zero T
		tree.underflow("find min")
		return zero, fault.ErrTreeEmpty
	}
	return p.element, nil
}

// FindMax - return the largest element
func (tree *Tree[T]) FindMax() (T, error) {
	p := tree.root.last()
	if nil == p {
		var zero T
		tree.underflow("find max")
		return zero, fault.ErrTreeEmpty
	}
	return p.element, nil
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
