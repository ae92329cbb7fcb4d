// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "load integers into a balanced tree and show the result"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " report each rotation",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print the values in order",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "descending, d",
					Usage: " largest value first",
				},
			},
			Action: runSort,
		},
		{
			Name:      "render",
			Usage:     "print the tree sideways, root at the left margin",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "label, l",
					Value: "tree",
					Usage: " heading for the rendering `LABEL`",
				},
			},
			Action: runRender,
		},
		{
			Name:      "print",
			Usage:     "draw the tree with heights and balance factors",
			ArgsUsage: "VALUE...",
			Flags:     []cli.Flag{},
			Action:    runPrint,
		},
		{
			Name:      "extract",
			Usage:     "remove and print the smallest values",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of values to remove `COUNT`",
				},
			},
			Action: runExtract,
		},
		{
			Name:      "info",
			Usage:     "show tree statistics as JSON",
			ArgsUsage: "VALUE...",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
