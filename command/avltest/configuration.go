// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (a relative log directory is taken from the configuration file's directory)
const (
	defaultLogFile  = "avltest.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Operation - one step of a script
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Value int    `gluamapper:"value" json:"value"`
	Label string `gluamapper:"label" json:"label"`
}

// Configuration - everything read from the Lua configuration file
type Configuration struct {
	Check   bool                 `gluamapper:"check" json:"check"`
	Script  []Operation          `gluamapper:"script" json:"script"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, an empty file name
// gives the defaults
func getConfiguration(configurationFileName string, verbose bool) (*Configuration, error) {

	// the parser writes into this map, so never hand it the shared defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		Check:  true,
		Script: nil,

		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}

		// relative log directory is below the configuration file
		if !filepath.IsAbs(options.Logging.Directory) {
			dataDirectory, _ := filepath.Split(configurationFileName)
			options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
		}
	}

	if verbose {
		options.Logging.Console = true
	}

	return options, nil
}
