// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

// run the application with arguments, returning the standard and error streams
func run(t *testing.T, arguments ...string) (string, string, error) {
	var w bytes.Buffer
	var e bytes.Buffer

	app := newApp(&w, &e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestSort(t *testing.T) {
	out, _, err := run(t, "sort", "5", "3", "9", "3", "1")
	require.NoError(t, err, "sort")
	assert.Equal(t, "1 3 3 5 9\n", out, "ascending")

	out, _, err = run(t, "sort", "-d", "5", "3", "9", "3", "1")
	require.NoError(t, err, "sort descending")
	assert.Equal(t, "9 5 3 3 1\n", out, "descending")
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "render", "--label", "t", "3", "1", "2")
	require.NoError(t, err, "render")
	assert.Equal(t, "t\n    3\n2\n    1\nEND t\n", out, "rendering")

	out, _, err = run(t, "render", "7")
	require.NoError(t, err, "render default label")
	assert.Equal(t, "tree\n7\nEND tree\n", out, "default label")
}

func TestPrint(t *testing.T) {
	out, _, err := run(t, "print", "2", "1", "3")
	require.NoError(t, err, "print")

	expected := "       /------+ 3 h:0 +0\n" +
		"|------+ 2 h:1 +0\n" +
		"       \\------+ 1 h:0 +0\n"
	assert.Equal(t, expected, out, "drawing")
}

func TestVerboseRotations(t *testing.T) {
	_, e, err := run(t, "--verbose", "sort", "1", "2", "3")
	require.NoError(t, err, "sort")
	assert.Equal(t, "rotation: single-left  height: 1\n", e, "rotation report")

	_, e, err = run(t, "-v", "sort", "3", "1", "2")
	require.NoError(t, err, "sort")
	assert.Equal(t, "rotation: double-left-right  height: 1\n", e, "rotation report")
}

func TestExtract(t *testing.T) {
	out, _, err := run(t, "extract", "-n", "3", "5", "3", "3", "1")
	require.NoError(t, err, "extract")
	assert.Equal(t, "1\n3\n3\n", out, "extracted values")

	out, _, err = run(t, "extract", "4")
	require.NoError(t, err, "extract default count")
	assert.Equal(t, "4\n", out, "single value")
}

func TestExtractUnderflow(t *testing.T) {
	out, _, err := run(t, "extract", "--count", "3", "2", "1")
	assert.Equal(t, fault.ErrTreeEmpty, err, "wrong error")
	assert.True(t, fault.IsErrUnderflow(err), "not an underflow")
	assert.Equal(t, "1\n2\n", out, "values before the underflow")
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", "5", "3", "3", "1")
	require.NoError(t, err, "info")

	expected := `{
  "size": 4,
  "count": 4,
  "height": 2,
  "minimum": 1,
  "maximum": 5
}
`
	assert.Equal(t, expected, out, "statistics")
}

func TestInvalidArguments(t *testing.T) {
	_, e, err := run(t, "sort", "4", "x")
	assert.Equal(t, ErrInvalidNumber, err, "non integer")
	assert.Contains(t, e, `invalid value: "x"`, "offending value not reported")

	_, _, err = run(t, "render")
	assert.Equal(t, ErrNoValues, err, "no values")

	_, _, err = run(t, "extract", "-n", "0", "1")
	assert.Equal(t, ErrInvalidCount, err, "zero count")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err, "version")
	assert.Equal(t, version+"\n", out, "version string")
}
