// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

var rotationKinds = []avl.Rotation{
	avl.SingleRight,
	avl.SingleLeft,
	avl.DoubleLeftRight,
	avl.DoubleRightLeft,
}

// rotation counts gathered while a script runs
type statistics struct {
	counts    map[avl.Rotation]*counter.Counter
	maxHeight int
}

func newStatistics() *statistics {
	s := &statistics{
		counts: make(map[avl.Rotation]*counter.Counter),
	}
	for _, kind := range rotationKinds {
		s.counts[kind] = new(counter.Counter)
	}
	return s
}

// Rotated - avl.Observer callback
func (s *statistics) Rotated(kind avl.Rotation, height int) {
	if c, ok := s.counts[kind]; ok {
		c.Increment()
	}
	if height > s.maxHeight {
		s.maxHeight = height
	}
}

func (s *statistics) count(kind avl.Rotation) int64 {
	if c, ok := s.counts[kind]; ok {
		return c.Int64()
	}
	return 0
}

func (s *statistics) total() int64 {
	n := int64(0)
	for _, c := range s.counts {
		n += c.Int64()
	}
	return n
}

func (s *statistics) report(log *logger.L) {
	for _, kind := range rotationKinds {
		log.Infof("rotations: %s: %d", kind, s.count(kind))
	}
	log.Infof("rotations: total: %d  highest rotated sub-tree: %d", s.total(), s.maxHeight)
}
