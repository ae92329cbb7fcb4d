// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
)

// LessFunc - strict weak ordering of elements
//
// two elements are equivalent when neither is less than the other
type LessFunc[T any] func(a T, b T) bool

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root      *node[T]
	less      LessFunc[T]
	size      counter.Counter // call count: insert +1, remove -1
	count     int             // nodes actually present
	format    func(T) string
	log       *logger.L
	observers []Observer
}

// New - create an initially empty tree ordered by less
func New[T any](less LessFunc[T]) *Tree[T] {
	if nil == less {
		panic("avl: nil less function")
	}
	return &Tree[T]{
		root:   nil,
		less:   less,
		count:  0,
		format: defaultFormat[T],
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - the running total of insert calls minus remove calls
//
// a remove of an absent element still decrements this value, so it
// only matches Count while every removed element was present
func (tree *Tree[T]) Size() int {
	return int(tree.size.Int64())
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// SetLogger - trace rotations and empty tree accesses to a logger
// channel, nil disables tracing
func (tree *Tree[T]) SetLogger(log *logger.L) {
	tree.log = log
}

// SetFormatter - change how elements are rendered by Render and Flat
func (tree *Tree[T]) SetFormatter(format func(T) string) {
	if nil == format {
		format = defaultFormat[T]
	}
	tree.format = format
}

// AddObserver - register to be told of every rotation
func (tree *Tree[T]) AddObserver(o Observer) {
	tree.observers = append(tree.observers, o)
}

func defaultFormat[T any](element T) string {
	return fmt.Sprint(element)
}

// internal: elements are equivalent when neither is less
func (tree *Tree[T]) equivalent(a T, b T) bool {
	return !tree.less(a, b) && !tree.less(b, a)
}
