// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Item - an element type that can order itself
//
// Compare returns -1, 0 or +1 for less, equal or greater
type Item[T any] interface {
	Compare(T) int
}

// Less - natural ordering of the built-in ordered types
func Less[T constraints.Ordered](a T, b T) bool {
	return a < b
}

// CompareLess - ordering of Item types via their Compare method
func CompareLess[T Item[T]](a T, b T) bool {
	return a.Compare(b) < 0
}

// NewOrdered - create an empty tree of a built-in ordered type
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New[T](Less[T])
}

// NewItems - create an empty tree of self comparing items
func NewItems[T Item[T]]() *Tree[T] {
	return New[T](CompareLess[T])
}
