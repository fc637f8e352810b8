// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	colour  bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "build, check and draw AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "conf, c",
			Value: "avltool.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute Lua scripts against a single tree",
			ArgsUsage: "SCRIPT...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the final tree",
				},
			},
			Action: runScript,
		},
		{
			Name:      "watch",
			Usage:     "execute a Lua script on a fresh tree each time it changes",
			ArgsUsage: "SCRIPT",
			Action:    runWatch,
		},
		{
			Name:  "import",
			Usage: "load the keys of a LevelDB database into a tree",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: " override configured database `DIRECTORY`",
				},
				cli.StringFlag{
					Name:  "prefix, x",
					Value: "",
					Usage: " override configured key `PREFIX`",
				},
				cli.BoolFlag{
					Name:  "verify, V",
					Usage: " compare tree order against the database",
				},
			},
			Action: runImport,
		},
		{
			Name:  "random",
			Usage: "apply a random insert/remove workload",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "operations, n",
					Value: 10000,
					Usage: " number of operations `COUNT`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: 1000,
					Usage: " keys drawn from 0 to `MAX`-1",
				},
				cli.IntFlag{
					Name:  "insert, i",
					Value: 60,
					Usage: " insert `PERCENT`, the rest are removes",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the final tree",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "print",
			Usage:     "insert keys in the order given and draw the tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "remove, r",
					Value: "",
					Usage: " comma separated `KEYS` to remove afterwards",
				},
			},
			Action: runPrint,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("conf")
		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return fmt.Errorf("configuration: %q  error: %s", file, err)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Info("starting…")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			log:     log,
			verbose: verbose,
			colour:  useColour(config.Colour, c.App.Writer),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

// fetch the metadata stored by app.Before
func getMetadata(c *cli.Context) (*metadata, error) {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return nil, fault.ErrMissingParameters
	}
	return m, nil
}
