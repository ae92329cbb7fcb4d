// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree holding an ordered
// multiset of elements
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node owns its two sub-trees and caches its height (an empty
// sub-tree has height -1 and a leaf height 0).  Every mutating
// routine takes a sub-tree and returns its possibly new root after a
// local rebalance, so rotations bubble up level by level on the way
// back from the recursion.
//
// Equal elements are allowed and are always inserted to the right,
// so an in-order walk yields a non-decreasing sequence.
package avl
