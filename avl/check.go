// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify cached heights, balance, ordering and node count
//
// returns the first inconsistency found or nil
func (tree *Tree[T]) Check() error {
	n, err := tree.checkShape(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		tree.checkFailed("count: %d  nodes: %d", tree.count, n)
		return fault.ErrCountMismatch
	}
	return tree.checkOrder()
}

// internal: heights and balance, returns the number of nodes
func (tree *Tree[T]) checkShape(p *node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := tree.checkShape(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkShape(p.right)
	if nil != err {
		return 0, err
	}

	l := height(p.left)
	r := height(p.right)
	expected := 1 + l
	if r > l {
		expected = 1 + r
	}
	if p.height != expected {
		tree.checkFailed("node: %s  height: %d  expected: %d", tree.format(p.element), p.height, expected)
		return 0, fault.ErrHeightMismatch
	}
	if l-r > allowedImbalance || r-l > allowedImbalance {
		tree.checkFailed("node: %s  left: %d  right: %d", tree.format(p.element), l, r)
		return 0, fault.ErrUnbalanced
	}
	return 1 + nl + nr, nil
}

// internal: the in-order sequence must never decrease
func (tree *Tree[T]) checkOrder() error {
	var previous T
	first := true
	ordered := true
	walk(tree.root, func(element T) bool {
		if !first && tree.less(element, previous) {
			tree.checkFailed("element: %s  follows: %s", tree.format(element), tree.format(previous))
			ordered = false
			return false
		}
		previous = element
		first = false
		return true
	})
	if !ordered {
		return fault.ErrOutOfOrder
	}
	return nil
}

func (tree *Tree[T]) checkFailed(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf("check failed: "+format, arguments...)
	}
}
