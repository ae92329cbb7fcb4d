// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// maximum height difference between the two sub-trees of any node
const allowedImbalance = 1

// restore the balance of a node whose sub-trees differ in height by
// at most two, returns the new sub-tree root
func (tree *Tree[T]) balance(p *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	if height(p.left)-height(p.right) > allowedImbalance {
		if height(p.left.left) >= height(p.left.right) {
			p = rotateRight(p)
			tree.rotated(SingleRight, p)
		} else {
			p.left = rotateLeft(p.left)
			p = rotateRight(p)
			tree.rotated(DoubleLeftRight, p)
		}
	} else if height(p.right)-height(p.left) > allowedImbalance {
		if height(p.right.right) >= height(p.right.left) {
			p = rotateLeft(p)
			tree.rotated(SingleLeft, p)
		} else {
			p.right = rotateRight(p.right)
			p = rotateLeft(p)
			tree.rotated(DoubleRightLeft, p)
		}
	}

	p.fixHeight()
	return p
}

// single rotation with the left child: k1 rises, k2 becomes its
// right child and takes k1's old right sub-tree as its left
func rotateRight[T any](k2 *node[T]) *node[T] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	k2.fixHeight()
	k1.fixHeight()
	return k1
}

// mirror of rotateRight
func rotateLeft[T any](k1 *node[T]) *node[T] {
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	k1.fixHeight()
	k2.fixHeight()
	return k2
}

// tell the logger and any observers
func (tree *Tree[T]) rotated(kind Rotation, p *node[T]) {
	if nil != tree.log {
		tree.log.Tracef("rotation: %s  at: %s  height: %d", kind, tree.format(p.element), p.height)
	}
	for _, o := range tree.observers {
		o.Rotated(kind, p.height)
	}
}
