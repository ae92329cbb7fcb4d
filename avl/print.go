// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// spaces per level in Render
const indentWidth = 4

// Render - the tree sideways, largest element first, each element on
// its own line indented by its depth, between a label line and an
// "END label" line
func (tree *Tree[T]) Render(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteByte('\n')
	if nil == tree.root {
		b.WriteString("Empty tree\n")
	} else {
		walkDescending(tree.root, 0, func(element T, depth int) {
			b.WriteString(strings.Repeat(" ", indentWidth*depth))
			b.WriteString(tree.format(element))
			b.WriteByte('\n')
		})
	}
	b.WriteString("END ")
	b.WriteString(label)
	b.WriteByte('\n')
	return b.String()
}

// Flat - all elements in descending order separated by single spaces
func (tree *Tree[T]) Flat() string {
	s := make([]string, 0, tree.count)
	walkDescending(tree.root, 0, func(element T, _ int) {
		s = append(s, tree.format(element))
	})
	return strings.Join(s, " ")
}

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print - display an ASCII graphic representation of the tree with
// the cached heights, returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, p *node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s h:%d %+d\n", tree.format(p.element), p.height, height(p.right)-height(p.left))
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
