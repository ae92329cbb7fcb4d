// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotation - the kind of restructuring applied to an unbalanced node
type Rotation int

// all possible rotations
const (
	SingleRight     Rotation = iota // left-left case
	SingleLeft                      // right-right case
	DoubleLeftRight                 // left-right case
	DoubleRightLeft                 // right-left case
)

// String - name of a rotation
func (r Rotation) String() string {
	switch r {
	case SingleRight:
		return "single-right"
	case SingleLeft:
		return "single-left"
	case DoubleLeftRight:
		return "double-left-right"
	case DoubleRightLeft:
		return "double-right-left"
	default:
		return "unknown"
	}
}

// Observer - receives a call for every rotation
//
// height is that of the rotated sub-tree's new root
type Observer interface {
	Rotated(kind Rotation, height int)
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer
