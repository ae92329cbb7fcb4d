// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
		// built-in defaults
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, n)
	}

	verbose := len(options["verbose"]) > 0
	theConfiguration, err := getConfiguration(configurationFile, verbose)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	command := "demo"
	if len(arguments) > 0 {
		command = arguments[0]
	} else if len(theConfiguration.Script) > 0 {
		command = "run"
	}

	script := demoScript
	switch command {
	case "demo":
	case "run":
		if 0 == len(theConfiguration.Script) {
			exitwithstatus.Message("%s: configuration has no script", program)
		}
		script = theConfiguration.Script
	default:
		exitwithstatus.Message("%s: no such command: %q", program, command)
	}

	stats := newStatistics()
	err = runScript(os.Stdout, script, theConfiguration.Check, stats, logger.New("avl"))
	stats.report(log)
	if nil != err {
		fault.Criticalf("script error: %s", err)
		exitwithstatus.Message("%s: script error: %s", program, err)
	}
}

// commands that need no configuration, returns false to continue
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--config-file=FILE] [command]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help       (h)  - display this message\n\n")
		fmt.Printf("  version    (v)  - display version string\n\n")
		fmt.Printf("  demo            - replay the built-in sequence (default without a script)\n\n")
		fmt.Printf("  run             - replay the script from the configuration file\n\n")

	default:
		return false
	}
	return true
}
