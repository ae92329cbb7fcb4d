// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type step struct {
	Op    string `gluamapper:"op"`
	Value int    `gluamapper:"value"`
}

type testConfiguration struct {
	Name   string            `gluamapper:"name"`
	Count  int               `gluamapper:"count"`
	Levels map[string]string `gluamapper:"levels"`
	Steps  []step            `gluamapper:"steps"`
}

const testConfig = `
local M = {}
M.name = "tree"
M.count = 2 + 3
M.levels = {
    main = "info",
    DEFAULT = "critical",
}
M.steps = {}
for i = 1, 3 do
    M.steps[#M.steps + 1] = { op = "insert", value = i * 10 }
end
M.steps[#M.steps + 1] = { op = "remove_min" }
return M
`

func writeConfig(t *testing.T, text string) string {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temporary directory")
	t.Cleanup(func() { os.RemoveAll(dir) })

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write configuration")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeConfig(t, testConfig)

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	require.NoError(t, err, "parse")

	assert.Equal(t, "tree", c.Name, "wrong name")
	assert.Equal(t, 5, c.Count, "wrong count")
	assert.Equal(t, "info", c.Levels["main"], "wrong main level")
	assert.Equal(t, "critical", c.Levels["DEFAULT"], "wrong default level")

	expected := []step{
		{Op: "insert", Value: 10},
		{Op: "insert", Value: 20},
		{Op: "insert", Value: 30},
		{Op: "remove_min"},
	}
	assert.Equal(t, expected, c.Steps, "wrong steps")
}

func TestParseMissingFile(t *testing.T) {
	var c testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistent/directory/test.conf", &c)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestParseNotStructPointer(t *testing.T) {
	fileName := writeConfig(t, testConfig)

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value accepted")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "int pointer accepted")
}

func TestParseNoTable(t *testing.T) {
	fileName := writeConfig(t, "return 12\n")

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error")
}

func TestParseLuaError(t *testing.T) {
	fileName := writeConfig(t, "return {\n")

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Error(t, err, "syntax error accepted")
}
