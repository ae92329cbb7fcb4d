// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// script operations
const (
	opInsert    = "insert"
	opRemove    = "remove"
	opRemoveMin = "remove_min"
	opContains  = "contains"
	opPrint     = "print"
	opFlat      = "flat"
	opClear     = "clear"
)

// the sequence used when no script is configured
var demoScript = concat(
	inserts(1, 3, 5, 7, 9, 9, 9, 11, 2, 9, 4, 8),
	[]Operation{
		{Op: opPrint, Label: "initial"},
		{Op: opRemove, Value: 7},
		{Op: opRemove, Value: 9},
		{Op: opPrint, Label: "removed 7 and 9"},
	},
	inserts(30, 50, 30, 30, 15, 18),
	[]Operation{
		{Op: opPrint, Label: "inserted 30 50 30 30 15 18"},
		{Op: opRemoveMin},
		{Op: opPrint, Label: "remove min"},
		{Op: opRemoveMin},
		{Op: opPrint, Label: "remove min"},
		{Op: opRemoveMin},
		{Op: opPrint, Label: "remove min"},
		{Op: opInsert, Value: 17},
		{Op: opPrint, Label: "inserted 17"},
	},
)

func inserts(values ...int) []Operation {
	ops := make([]Operation, 0, len(values))
	for _, v := range values {
		ops = append(ops, Operation{Op: opInsert, Value: v})
	}
	return ops
}

func concat(lists ...[]Operation) []Operation {
	all := []Operation{}
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

// apply a script to a fresh tree writing every rendering to w
//
// an empty tree on remove_min is logged and skipped, an unknown
// operation or a failed check stops the script
func runScript(w io.Writer, script []Operation, check bool, observer avl.Observer, log *logger.L) error {

	tree := avl.NewOrdered[int]()
	tree.SetLogger(log)
	if nil != observer {
		tree.AddObserver(observer)
	}

	for i, op := range script {
		switch op.Op {
		case opInsert:
			tree.Insert(op.Value)

		case opRemove:
			if !tree.Remove(op.Value) {
				log.Infof("[%d] remove: %d not present", i, op.Value)
			}

		case opRemoveMin:
			v, err := tree.RemoveMin()
			if nil != err {
				log.Warnf("[%d] remove min: %s", i, err)
			} else {
				log.Infof("[%d] remove min: %d", i, v)
			}

		case opContains:
			fmt.Fprintf(w, "contains %d: %v\n", op.Value, tree.Contains(op.Value))

		case opPrint:
			fmt.Fprintln(w, tree.Render(op.Label))

		case opFlat:
			fmt.Fprintln(w, tree.Flat())

		case opClear:
			tree.MakeEmpty()

		default:
			log.Errorf("[%d] operation: %q", i, op.Op)
			return fault.ErrUnknownOperation
		}

		if check {
			if err := tree.Check(); nil != err {
				log.Criticalf("[%d] %s %d: %s", i, op.Op, op.Value, err)
				return err
			}
		}
	}

	log.Infof("finished: size: %d  count: %d  height: %d", tree.Size(), tree.Count(), tree.Height())
	return nil
}
