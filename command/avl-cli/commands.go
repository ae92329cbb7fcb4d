// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

// writes one line per rotation to the error stream
type rotationPrinter struct {
	e io.Writer
}

func (r rotationPrinter) Rotated(kind avl.Rotation, height int) {
	fmt.Fprintf(r.e, "rotation: %s  height: %d\n", kind, height)
}

type treeInfo struct {
	Size    int `json:"size"`
	Count   int `json:"count"`
	Height  int `json:"height"`
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

// insert every argument into a fresh tree
func loadTree(c *cli.Context) (*avl.Tree[int], *metadata, error) {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return nil, m, ErrNoValues
	}

	tree := avl.NewOrdered[int]()
	if m.verbose {
		tree.AddObserver(rotationPrinter{e: m.e})
	}

	for _, s := range c.Args() {
		v, err := strconv.Atoi(s)
		if nil != err {
			fmt.Fprintf(m.e, "invalid value: %q\n", s)
			return nil, m, ErrInvalidNumber
		}
		tree.Insert(v)
	}

	if err := tree.Check(); nil != err {
		return nil, m, err
	}
	return tree, m, nil
}

func runSort(c *cli.Context) error {

	tree, m, err := loadTree(c)
	if nil != err {
		return err
	}

	if c.Bool("descending") {
		fmt.Fprintln(m.w, tree.Flat())
		return nil
	}

	values := tree.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(m.w, strings.Join(s, " "))
	return nil
}

func runRender(c *cli.Context) error {

	tree, m, err := loadTree(c)
	if nil != err {
		return err
	}

	fmt.Fprint(m.w, tree.Render(c.String("label")))
	return nil
}

func runPrint(c *cli.Context) error {

	tree, m, err := loadTree(c)
	if nil != err {
		return err
	}

	depth := tree.Print(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runExtract(c *cli.Context) error {

	count := c.Int("count")
	if count <= 0 {
		return ErrInvalidCount
	}

	tree, m, err := loadTree(c)
	if nil != err {
		return err
	}

	for i := 0; i < count; i += 1 {
		v, err := tree.RemoveMin()
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%d\n", v)
	}
	return nil
}

func runInfo(c *cli.Context) error {

	tree, m, err := loadTree(c)
	if nil != err {
		return err
	}

	minimum, err := tree.FindMin()
	if nil != err {
		return err
	}
	maximum, err := tree.FindMax()
	if nil != err {
		return err
	}

	info := treeInfo{
		Size:    tree.Size(),
		Count:   tree.Count(),
		Height:  tree.Height(),
		Minimum: minimum,
		Maximum: maximum,
	}
	return printJson(m.w, info)
}
